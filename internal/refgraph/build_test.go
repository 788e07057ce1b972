package refgraph

import (
	"testing"

	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("main formula references", func(t *testing.T) {
		vars := []model.Variable{
			{ID: "123456", Value: "1*1"},
			{ID: "234567", Value: "#123456*2"},
		}
		expected := []Reference{
			{ID: "123456", ReferencedBy: []string{"234567"}},
			{ID: "234567", ReferencedBy: []string{}},
		}
		assert.Equal(t, expected, Build(vars).References())
	})

	t.Run("override formula references", func(t *testing.T) {
		vars := []model.Variable{
			{ID: "1", Value: "1*1"},
			{ID: "2", Value: "#3*2"},
			{ID: "3", Value: "$1*(1+0.01)", Value1: "#1"},
		}
		expected := []Reference{
			{ID: "1", ReferencedBy: []string{"3"}},
			{ID: "2", ReferencedBy: []string{}},
			{ID: "3", ReferencedBy: []string{"2"}},
		}
		assert.Equal(t, expected, Build(vars).References())
	})

	t.Run("lags ignored and references deduplicated", func(t *testing.T) {
		vars := []model.Variable{
			{ID: "1", Value: "5"},
			{ID: "2", Value: "#1$1+#1$2", Value1: "#1"},
		}
		expected := []Reference{
			{ID: "1", ReferencedBy: []string{"2"}},
			{ID: "2", ReferencedBy: []string{}},
		}
		assert.Equal(t, expected, Build(vars).References())
	})

	t.Run("main and override are scanned separately", func(t *testing.T) {
		vars := []model.Variable{
			{ID: "1", Value: "5"},
			{ID: "12", Value: "6"},
			{ID: "3", Value: "#1", Value1: "2"},
		}
		by, err := Build(vars).ReferencedBy("12")
		assert.NoError(t, err)
		assert.Empty(t, by)
	})

	t.Run("self and unknown references add no edges", func(t *testing.T) {
		vars := []model.Variable{
			{ID: "1", Value: "$1+#1+#99"},
		}
		expected := []Reference{
			{ID: "1", ReferencedBy: []string{}},
		}
		assert.Equal(t, expected, Build(vars).References())
	})

	t.Run("internal references never appear", func(t *testing.T) {
		vars := []model.Variable{
			{ID: "1", Value: "$1+1", Value1: "100"},
			{ID: "2", Value: "$2"},
		}
		for _, ref := range Build(vars).References() {
			assert.Empty(t, ref.ReferencedBy, ref.ID)
		}
	})
}
