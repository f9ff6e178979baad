package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wms-api/internal/application/ledger"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
	"github.com/tu-usuario/wms-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
//
// memStore simula la base: existencias por item (bodega única), entradas y
// salidas con sus líneas. El fakeTxRunner toma un snapshot antes de ejecutar
// la función y lo restaura si falla, emulando el rollback transaccional.
// ──────────────────────────────────────────────────────────────────────────────

const testWarehouseID int64 = 1

type memStore struct {
	stocks    map[int64]int64
	stockIns  map[int64]*entity.StockIn
	stockOuts map[int64]*entity.StockOut
	nextInID  int64
	nextOutID int64
	items     map[int64]*entity.Item
	suppliers map[int64]*entity.Supplier
}

func newMemStore() *memStore {
	return &memStore{
		stocks:    map[int64]int64{},
		stockIns:  map[int64]*entity.StockIn{},
		stockOuts: map[int64]*entity.StockOut{},
		items:     map[int64]*entity.Item{},
		suppliers: map[int64]*entity.Supplier{},
	}
}

func (s *memStore) addItem(id int64, name string) {
	s.items[id] = &entity.Item{ID: id, Name: name, SKU: name}
}

func (s *memStore) addSupplier(id int64, name string) {
	s.suppliers[id] = &entity.Supplier{ID: id, Name: name}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextInID, cp.nextOutID = s.nextInID, s.nextOutID
	for k, v := range s.stocks {
		cp.stocks[k] = v
	}
	for k, v := range s.stockIns {
		cp.stockIns[k] = copyStockIn(v)
	}
	for k, v := range s.stockOuts {
		cp.stockOuts[k] = copyStockOut(v)
	}
	cp.items, cp.suppliers = s.items, s.suppliers
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.stocks, s.stockIns, s.stockOuts = snap.stocks, snap.stockIns, snap.stockOuts
	s.nextInID, s.nextOutID = snap.nextInID, snap.nextOutID
}

func copyStockIn(in *entity.StockIn) *entity.StockIn {
	cp := *in
	cp.Lines = append([]entity.StockInLine(nil), in.Lines...)
	return &cp
}

func copyStockOut(out *entity.StockOut) *entity.StockOut {
	cp := *out
	cp.Lines = append([]entity.StockOutLine(nil), out.Lines...)
	return &cp
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) Get(itemID, warehouseID int64) (*entity.Stock, error) {
	qty, ok := r.s.stocks[itemID]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ItemID: itemID, WarehouseID: warehouseID, Quantity: qty}, nil
}

func (r *fakeStockRepo) GetForUpdate(itemID, warehouseID int64) (*entity.Stock, error) {
	return r.Get(itemID, warehouseID)
}

func (r *fakeStockRepo) ApplyDelta(itemID, warehouseID, delta int64) (int64, error) {
	r.s.stocks[itemID] += delta
	return r.s.stocks[itemID], nil
}

func (r *fakeStockRepo) ListAll() ([]*entity.Stock, error) {
	var out []*entity.Stock
	for id, qty := range r.s.stocks {
		out = append(out, &entity.Stock{ItemID: id, WarehouseID: testWarehouseID, Quantity: qty})
	}
	return out, nil
}

type fakeStockInRepo struct{ s *memStore }

func (r *fakeStockInRepo) Create(stockIn *entity.StockIn) error {
	r.s.nextInID++
	stockIn.ID = r.s.nextInID
	stockIn.Date = time.Now()
	r.s.stockIns[stockIn.ID] = copyStockIn(stockIn)
	return nil
}

func (r *fakeStockInRepo) GetByID(id int64) (*entity.StockIn, error) {
	in, ok := r.s.stockIns[id]
	if !ok {
		return nil, nil
	}
	return copyStockIn(in), nil
}

func (r *fakeStockInRepo) UpdateHeader(id, supplierID, total int64) error {
	in, ok := r.s.stockIns[id]
	if !ok {
		return domain.ErrNotFound
	}
	in.SupplierID, in.Total = supplierID, total
	return nil
}

func (r *fakeStockInRepo) ReplaceLines(id int64, lines []entity.StockInLine) error {
	in, ok := r.s.stockIns[id]
	if !ok {
		return domain.ErrNotFound
	}
	in.Lines = append([]entity.StockInLine(nil), lines...)
	return nil
}

func (r *fakeStockInRepo) Delete(id int64) error {
	delete(r.s.stockIns, id)
	return nil
}

func (r *fakeStockInRepo) List(limit, offset int) ([]*entity.StockIn, int, error) {
	var out []*entity.StockIn
	for _, in := range r.s.stockIns {
		out = append(out, copyStockIn(in))
	}
	return out, len(r.s.stockIns), nil
}

type fakeStockOutRepo struct{ s *memStore }

func (r *fakeStockOutRepo) Create(stockOut *entity.StockOut) error {
	r.s.nextOutID++
	stockOut.ID = r.s.nextOutID
	stockOut.Date = time.Now()
	r.s.stockOuts[stockOut.ID] = copyStockOut(stockOut)
	return nil
}

func (r *fakeStockOutRepo) GetByID(id int64) (*entity.StockOut, error) {
	out, ok := r.s.stockOuts[id]
	if !ok {
		return nil, nil
	}
	return copyStockOut(out), nil
}

func (r *fakeStockOutRepo) UpdateHeader(id int64, destination *string) error {
	out, ok := r.s.stockOuts[id]
	if !ok {
		return domain.ErrNotFound
	}
	out.Destination = destination
	return nil
}

func (r *fakeStockOutRepo) ReplaceLines(id int64, lines []entity.StockOutLine) error {
	out, ok := r.s.stockOuts[id]
	if !ok {
		return domain.ErrNotFound
	}
	out.Lines = append([]entity.StockOutLine(nil), lines...)
	return nil
}

func (r *fakeStockOutRepo) Delete(id int64) error {
	delete(r.s.stockOuts, id)
	return nil
}

func (r *fakeStockOutRepo) List(limit, offset int) ([]*entity.StockOut, int, error) {
	var out []*entity.StockOut
	for _, o := range r.s.stockOuts {
		out = append(out, copyStockOut(o))
	}
	return out, len(r.s.stockOuts), nil
}

type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) Create(item *entity.Item) error { return nil }
func (r *fakeItemRepo) GetByID(id int64) (*entity.Item, error) { return r.s.items[id], nil }
func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) GetByBarcode(bc string) (*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) Update(item *entity.Item) error { return nil }
func (r *fakeItemRepo) Delete(id int64) error { return nil }
func (r *fakeItemRepo) List(s string, l, o int) ([]*entity.Item, int, error) {
	return nil, 0, nil
}

type fakeSupplierRepo struct{ s *memStore }

func (r *fakeSupplierRepo) Create(sp *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) { return r.s.suppliers[id], nil }
func (r *fakeSupplierRepo) Update(sp *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(id int64) error { return nil }
func (r *fakeSupplierRepo) List(s string, l, o int) ([]*entity.Supplier, int, error) {
	return nil, 0, nil
}

// fakeTxRunner emula todo-o-nada: snapshot antes, restore si la función falla.
type fakeTxRunner struct{ s *memStore }

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) error) error {
	snap := tx.s.snapshot()
	err := fn(&fakeStockRepo{tx.s}, &fakeStockInRepo{tx.s}, &fakeStockOutRepo{tx.s})
	if err != nil {
		tx.s.restore(snap)
	}
	return err
}

var (
	_ repository.StockRepository    = (*fakeStockRepo)(nil)
	_ repository.StockInRepository  = (*fakeStockInRepo)(nil)
	_ repository.StockOutRepository = (*fakeStockOutRepo)(nil)
	_ repository.ItemRepository     = (*fakeItemRepo)(nil)
	_ repository.SupplierRepository = (*fakeSupplierRepo)(nil)
	_ ledger.TxRunner               = (*fakeTxRunner)(nil)
)

// newEngine construye el motor sobre el store con dos items de prueba
// (IDs 1 y 2) y un proveedor (ID 1).
func newEngine(s *memStore) *ledger.StockLedgerUseCase {
	s.addItem(1, "Tornillo")
	s.addItem(2, "Tuerca")
	s.addSupplier(1, "Proveedor General")
	return ledger.NewStockLedgerUseCase(
		&fakeTxRunner{s},
		&fakeItemRepo{s},
		&fakeSupplierRepo{s},
		&fakeStockRepo{s},
		&fakeStockInRepo{s},
		&fakeStockOutRepo{s},
		testWarehouseID,
		logger.NewNop(),
	)
}

func ctx() context.Context { return context.Background() }

// ──────────────────────────────────────────────────────────────────────────────
// Entradas de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordStockIn_IncrementaStockYCreaFilaPerezosa(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	// Ningún item tiene fila de stock todavía
	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines: []ledger.Line{
			{ItemID: 1, Qty: 10},
			{ItemID: 2, Qty: 5},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, in)

	assert.Equal(t, int64(15), in.Total, "el total debe ser la suma de cantidades")
	assert.Equal(t, int64(10), s.stocks[1])
	assert.Equal(t, int64(5), s.stocks[2])
}

func TestRecordStockIn_LineasRepetidasDelMismoItemSeAcumulan(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines: []ledger.Line{
			{ItemID: 1, Qty: 3},
			{ItemID: 1, Qty: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), in.Total)
	assert.Equal(t, int64(7), s.stocks[1])
}

func TestRecordStockIn_ProveedorInexistente_NotFound(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 99,
		Lines:      []ledger.Line{{ItemID: 1, Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.stocks, "no debe haber mutación de stock")
}

func TestRecordStockIn_ItemInexistente_NotFound(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines:      []ledger.Line{{ItemID: 99, Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStockIn_LineasInvalidas(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	casos := []struct {
		nombre string
		lines  []ledger.Line
	}{
		{"sin líneas", nil},
		{"lista vacía", []ledger.Line{}},
		{"qty cero", []ledger.Line{{ItemID: 1, Qty: 0}}},
		{"qty negativa", []ledger.Line{{ItemID: 1, Qty: -3}}},
		{"item cero", []ledger.Line{{ItemID: 0, Qty: 1}}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{SupplierID: 1, Lines: c.lines})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdateStockIn_ReemplazaLineasConEfectoNeto(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines:      []ledger.Line{{ItemID: 1, Qty: 10}, {ItemID: 2, Qty: 5}},
	})
	require.NoError(t, err)

	// Reemplazo completo: el stock final debe ser idéntico al que habría si
	// la entrada se hubiera creado directamente con las líneas nuevas.
	updated, err := uc.UpdateStockIn(ctx(), in.ID, ledger.UpdateStockInInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), updated.Total, "el total se recalcula con las líneas nuevas")
	assert.Equal(t, int64(3), s.stocks[1])
	assert.Equal(t, int64(0), s.stocks[2], "el item que salió del conjunto queda revertido")
	require.Len(t, updated.Lines, 1)
	assert.Equal(t, int64(1), updated.Lines[0].ItemID)
}

func TestUpdateStockIn_SoloCabecera_NoTocaStock(t *testing.T) {
	s := newMemStore()
	s.addSupplier(2, "Otro Proveedor")
	uc := newEngine(s)

	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines:      []ledger.Line{{ItemID: 1, Qty: 10}},
	})
	require.NoError(t, err)

	nuevoProveedor := int64(2)
	updated, err := uc.UpdateStockIn(ctx(), in.ID, ledger.UpdateStockInInput{
		SupplierID: &nuevoProveedor,
	})
	require.NoError(t, err)

	assert.Equal(t, nuevoProveedor, updated.SupplierID)
	assert.Equal(t, int64(10), updated.Total, "sin líneas nuevas el total no cambia")
	assert.Equal(t, int64(10), s.stocks[1], "sin líneas nuevas el stock no se toca")
}

func TestUpdateStockIn_FechaInmutable(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines:      []ledger.Line{{ItemID: 1, Qty: 10}},
	})
	require.NoError(t, err)
	fecha := in.Date

	updated, err := uc.UpdateStockIn(ctx(), in.ID, ledger.UpdateStockInInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 2}},
	})
	require.NoError(t, err)
	assert.True(t, updated.Date.Equal(fecha), "la fecha de la entrada nunca cambia")
}

func TestUpdateStockIn_ReversionPuedeDejarStockNegativo(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	// Entran 10, una salida consume 8, queda 2
	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines:      []ledger.Line{{ItemID: 1, Qty: 10}},
	})
	require.NoError(t, err)
	_, err = uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 8}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), s.stocks[1])

	// Editar la entrada para mover todo al item 2: revertir -10 deja el
	// item 1 en -8. La reversión no tiene piso en cero.
	_, err = uc.UpdateStockIn(ctx(), in.ID, ledger.UpdateStockInInput{
		Lines: []ledger.Line{{ItemID: 2, Qty: 10}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-8), s.stocks[1], "la reversión puede dejar saldo negativo")
	assert.Equal(t, int64(10), s.stocks[2])
}

func TestUpdateStockIn_Inexistente_NotFound(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.UpdateStockIn(ctx(), 42, ledger.UpdateStockInInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteStockIn_RestauraStock(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1,
		Lines:      []ledger.Line{{ItemID: 1, Qty: 10}, {ItemID: 2, Qty: 5}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteStockIn(ctx(), in.ID))

	assert.Equal(t, int64(0), s.stocks[1], "borrar la entrada deshace su efecto completo")
	assert.Equal(t, int64(0), s.stocks[2])
	_, err = uc.GetStockIn(in.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas de stock
// ──────────────────────────────────────────────────────────────────────────────

func seedStock(t *testing.T, uc *ledger.StockLedgerUseCase, qty1, qty2 int64) {
	t.Helper()
	lines := []ledger.Line{}
	if qty1 > 0 {
		lines = append(lines, ledger.Line{ItemID: 1, Qty: qty1})
	}
	if qty2 > 0 {
		lines = append(lines, ledger.Line{ItemID: 2, Qty: qty2})
	}
	_, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{SupplierID: 1, Lines: lines})
	require.NoError(t, err)
}

func TestRecordStockOut_DescuentaStock(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 10, 5)

	dest := "Tienda Norte"
	out, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Destination: &dest,
		Lines:       []ledger.Line{{ItemID: 1, Qty: 4}, {ItemID: 2, Qty: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), out.Total())
	assert.Equal(t, int64(6), s.stocks[1])
	assert.Equal(t, int64(0), s.stocks[2], "consumir el stock exacto es válido")
}

func TestRecordStockOut_StockInsuficiente_RechazaSinEfectos(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 10, 3)

	// La primera línea alcanza; la segunda no. Nada debe aplicarse.
	_, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 4}, {ItemID: 2, Qty: 7}},
	})
	require.Error(t, err)

	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, int64(2), insErr.ItemID)
	assert.Equal(t, int64(3), insErr.Available)
	assert.Equal(t, int64(7), insErr.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), s.stocks[1], "rechazo sin aplicación parcial")
	assert.Equal(t, int64(3), s.stocks[2])
	assert.Empty(t, s.stockOuts, "la salida no debe persistirse")
}

func TestRecordStockOut_ItemSinMovimientos_DisponibleCero(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 1}},
	})
	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, int64(0), insErr.Available, "item sin fila de stock se trata como disponible 0")
}

func TestUpdateStockOut_ReemplazaLineasConEfectoNeto(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 10, 0)

	out, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), s.stocks[1])

	// 5 <= 7 disponibles: pasa el chequeo, revierte +3 y descuenta -5
	updated, err := uc.UpdateStockOut(ctx(), out.ID, ledger.UpdateStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), s.stocks[1], "stock final = inicial - líneas nuevas")
	require.Len(t, updated.Lines, 1)
	assert.Equal(t, int64(5), updated.Lines[0].Qty)
}

func TestUpdateStockOut_ChequeaContraStockActualAntesDeRevertir(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 10, 0)

	out, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 8}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), s.stocks[1])

	// Pedir 6 sería válido tras revertir los 8 (habría 10), pero el chequeo
	// se hace contra el stock actual (2) y rechaza.
	_, err = uc.UpdateStockOut(ctx(), out.ID, ledger.UpdateStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 6}},
	})
	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, int64(2), insErr.Available)
	assert.Equal(t, int64(6), insErr.Requested)

	assert.Equal(t, int64(2), s.stocks[1], "el rechazo no deja efectos")
	existing, err := uc.GetStockOut(out.ID)
	require.NoError(t, err)
	require.Len(t, existing.Lines, 1)
	assert.Equal(t, int64(8), existing.Lines[0].Qty, "las líneas originales quedan intactas")
}

func TestUpdateStockOut_SoloCabecera_NoTocaStock(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 10, 0)

	out, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 3}},
	})
	require.NoError(t, err)

	dest := "Tienda Sur"
	updated, err := uc.UpdateStockOut(ctx(), out.ID, ledger.UpdateStockOutInput{
		Destination: &dest,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Destination)
	assert.Equal(t, dest, *updated.Destination)
	assert.Equal(t, int64(7), s.stocks[1], "cambiar solo el destino no toca el stock")
}

func TestDeleteStockOut_DevuelveStock(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 10, 0)

	out, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), s.stocks[1])

	require.NoError(t, uc.DeleteStockOut(ctx(), out.ID))

	assert.Equal(t, int64(10), s.stocks[1], "borrar la salida devuelve lo descontado")
	_, err = uc.GetStockOut(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del libro de existencias
// ──────────────────────────────────────────────────────────────────────────────

// Conservación: tras cualquier secuencia de operaciones, el stock de cada item
// es la suma de entradas vivas menos la suma de salidas vivas.
func TestLedger_ConservacionDeCantidades(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	in1, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1, Lines: []ledger.Line{{ItemID: 1, Qty: 20}, {ItemID: 2, Qty: 10}},
	})
	require.NoError(t, err)
	_, err = uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1, Lines: []ledger.Line{{ItemID: 1, Qty: 5}},
	})
	require.NoError(t, err)
	out1, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 8}, {ItemID: 2, Qty: 4}},
	})
	require.NoError(t, err)
	_, err = uc.UpdateStockIn(ctx(), in1.ID, ledger.UpdateStockInInput{
		Lines: []ledger.Line{{ItemID: 1, Qty: 15}, {ItemID: 2, Qty: 10}},
	})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteStockOut(ctx(), out1.ID))

	// Entradas vivas: item1 15+5=20, item2 10. Salidas vivas: ninguna.
	assert.Equal(t, int64(20), s.stocks[1])
	assert.Equal(t, int64(10), s.stocks[2])
}

// Reversión: crear y borrar una operación deja el stock exactamente donde
// estaba.
func TestLedger_CrearYBorrarEsNeutro(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 9, 7)

	in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
		SupplierID: 1, Lines: []ledger.Line{{ItemID: 1, Qty: 13}},
	})
	require.NoError(t, err)
	out, err := uc.RecordStockOut(ctx(), ledger.RecordStockOutInput{
		Lines: []ledger.Line{{ItemID: 2, Qty: 6}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteStockIn(ctx(), in.ID))
	require.NoError(t, uc.DeleteStockOut(ctx(), out.ID))

	assert.Equal(t, int64(9), s.stocks[1])
	assert.Equal(t, int64(7), s.stocks[2])
}

// Equivalencia de edición: editar una operación deja el stock igual que si se
// hubiera creado directamente con las líneas nuevas.
func TestLedger_EditarEquivaleACrearConLineasNuevas(t *testing.T) {
	construir := func(editar bool) map[int64]int64 {
		s := newMemStore()
		uc := newEngine(s)
		seedStock(t, uc, 50, 50)

		if editar {
			in, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
				SupplierID: 1, Lines: []ledger.Line{{ItemID: 1, Qty: 10}, {ItemID: 2, Qty: 3}},
			})
			require.NoError(t, err)
			_, err = uc.UpdateStockIn(ctx(), in.ID, ledger.UpdateStockInInput{
				Lines: []ledger.Line{{ItemID: 2, Qty: 12}},
			})
			require.NoError(t, err)
		} else {
			_, err := uc.RecordStockIn(ctx(), ledger.RecordStockInInput{
				SupplierID: 1, Lines: []ledger.Line{{ItemID: 2, Qty: 12}},
			})
			require.NoError(t, err)
		}
		return s.stocks
	}

	conEdicion := construir(true)
	directo := construir(false)
	assert.Equal(t, directo[1], conEdicion[1])
	assert.Equal(t, directo[2], conEdicion[2])
}

func TestStockLevel_SinFila_DevuelveCero(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	qty, err := uc.StockLevel(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)
}

func TestStockLevel_ConMovimientos(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)
	seedStock(t, uc, 42, 0)

	qty, err := uc.StockLevel(1, testWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), qty)
}

func TestGetStockIn_Inexistente_NotFound(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.GetStockIn(404)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
