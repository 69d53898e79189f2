package manufacturing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/manufacturing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Receta con dos componentes y cantidad 3: cada requerimiento escala por la
// cantidad de la orden y conserva el orden de las líneas.
func TestComputeRequirements_EscalaPorCantidad(t *testing.T) {
	lines := []entity.MOBOMLine{
		{ComponentID: "acero", QuantityPerUnit: d("2"), Position: 0},
		{ComponentID: "tornillo", QuantityPerUnit: d("0.5"), Position: 1},
	}

	reqs := manufacturing.ComputeRequirements(lines, d("3"))

	require.Len(t, reqs, 2)
	assert.Equal(t, "acero", reqs[0].ComponentID)
	assert.True(t, reqs[0].Required.Equal(d("6")), "2 x 3 = 6")
	assert.Equal(t, "tornillo", reqs[1].ComponentID)
	assert.True(t, reqs[1].Required.Equal(d("1.5")), "0.5 x 3 = 1.5")
}

// Producto suelto: sin líneas no hay requerimientos, no es un error.
func TestComputeRequirements_SinReceta(t *testing.T) {
	reqs := manufacturing.ComputeRequirements(nil, d("10"))
	assert.Empty(t, reqs)
}

func TestReconciled(t *testing.T) {
	assert.True(t, manufacturing.Reconciled(d("8"), d("8.00")))
	assert.False(t, manufacturing.Reconciled(d("8"), d("7")))
}
