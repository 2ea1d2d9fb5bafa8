package ledger

import (
	"sort"

	"github.com/agristock/depot-api/internal/domain/entity"
)

// Query es el descriptor de consulta sobre el libro de movimientos que
// consume el gateway de persistencia: alcance más límite de presentación.
// El orden no es configurable: fecha del movimiento descendente, con
// desempate por created_at descendente (para una misma fecha gana la
// entrada registrada más recientemente).
type Query struct {
	Scope Scope
	Limit int // 0 = sin límite
}

// ComposeQuery combina el alcance con la intención de presentación del
// llamador. El límite se aplica siempre DESPUÉS del orden. Las estadísticas
// (Summarize) deben calcularse sobre el conjunto filtrado SIN límite, nunca
// sobre la página visible: el truncado de presentación y la agregación usan
// el mismo filtro pero distinto número de filas.
func ComposeQuery(scope Scope, limit int) Query {
	if limit < 0 {
		limit = 0
	}
	return Query{Scope: scope, Limit: limit}
}

// moreRecent reporta si a se ordena antes que b bajo el orden del libro.
func moreRecent(a, b entity.StockMovement) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// SortMovements ordena en memoria con el mismo criterio que el almacén
// (fecha desc, created_at desc). Lo usan los dobles de prueba del gateway.
func SortMovements(movements []entity.StockMovement) {
	sort.SliceStable(movements, func(i, j int) bool {
		return moreRecent(movements[i], movements[j])
	})
}

// Top devuelve una copia ordenada con las n primeras filas; n <= 0 devuelve
// todas. No muta la colección de entrada.
func Top(movements []entity.StockMovement, n int) []entity.StockMovement {
	out := make([]entity.StockMovement, len(movements))
	copy(out, movements)
	SortMovements(out)
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
