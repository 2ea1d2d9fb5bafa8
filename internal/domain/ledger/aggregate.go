package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/agristock/depot-api/internal/domain/entity"
)

// Summary son las estadísticas agregadas de una colección de movimientos.
// Los pesos son decimal, por lo que la suma es exacta e independiente del
// orden de las filas.
type Summary struct {
	TotalIn        decimal.Decimal
	TotalOut       decimal.Decimal
	CurrentStock   decimal.Decimal // TotalIn - TotalOut, sin recortar a cero
	UnreadComments int
}

// Summarize pliega una colección de movimientos (ya filtrada por alcance) en
// un resumen. Una colección vacía produce el resumen en cero. CurrentStock
// puede ser negativo si los datos son inconsistentes; se deja pasar tal cual
// para que la inconsistencia sea visible en vez de quedar oculta.
func Summarize(movements []entity.StockMovement) Summary {
	s := Summary{
		TotalIn:      decimal.Zero,
		TotalOut:     decimal.Zero,
		CurrentStock: decimal.Zero,
	}
	for _, m := range movements {
		switch m.Type {
		case entity.MovementIn:
			s.TotalIn = s.TotalIn.Add(m.TotalWeight)
		case entity.MovementOut:
			s.TotalOut = s.TotalOut.Add(m.TotalWeight)
		}
		if m.FarmerComment != "" && !m.IsCommentRead {
			s.UnreadComments++
		}
	}
	s.CurrentStock = s.TotalIn.Sub(s.TotalOut)
	return s
}
