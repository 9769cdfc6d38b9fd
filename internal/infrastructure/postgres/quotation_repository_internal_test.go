package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
)

func TestQuotationDest_CoincideConColumnas(t *testing.T) {
	cols := strings.Split(quotationColumns, ",")
	assert.Len(t, quotationDest(&entity.Quotation{}), len(cols))
}

func TestUserColumns_Orden(t *testing.T) {
	cols := strings.Split(userColumns, ",")
	assert.Len(t, cols, 11)
	assert.Equal(t, "id", strings.TrimSpace(cols[0]))
	assert.Equal(t, "updated_at", strings.TrimSpace(cols[len(cols)-1]))
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, nonNil(nil))
	assert.Equal(t, []string{"o2d"}, nonNil([]string{"o2d"}))
}
