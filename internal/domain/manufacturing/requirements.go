package manufacturing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// MaterialRequirement es el requerimiento de un componente para una corrida:
// Required = QuantityPerUnit * cantidad de la orden.
type MaterialRequirement struct {
	ComponentID string
	Required    decimal.Decimal
}

// ComputeRequirements calcula los requerimientos de materiales desde las líneas
// congeladas de la orden de fabricación (servicio de dominio, sin I/O).
// Las líneas llegan en orden de posición y el resultado lo preserva: el consumo
// se aplica en ese mismo orden, determinista para poder testearlo.
func ComputeRequirements(lines []entity.MOBOMLine, orderQty decimal.Decimal) []MaterialRequirement {
	reqs := make([]MaterialRequirement, 0, len(lines))
	for _, line := range lines {
		reqs = append(reqs, MaterialRequirement{
			ComponentID: line.ComponentID,
			Required:    line.QuantityPerUnit.Mul(orderQty),
		})
	}
	return reqs
}

// Reconciled verifica el invariante kardex/caché: el saldo denormalizado del
// producto debe igualar la suma de los cambios con signo de sus asientos.
func Reconciled(cachedStock, ledgerSum decimal.Decimal) bool {
	return cachedStock.Equal(ledgerSum)
}
