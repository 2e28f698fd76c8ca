package navbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddImports(t *testing.T) {
	const (
		insets = "<?import javafx.geometry.Insets?>"
		region = "<?import javafx.scene.layout.Region?>"
	)

	t.Run("both missing are added after the last import in order", func(t *testing.T) {
		in := "<?import a.A?>\n<?import b.B?>\n\n<BorderPane/>"

		got, added := AddImports(in)

		assert.Equal(t, []string{insets, region}, added)
		assert.Equal(t, "<?import a.A?>\n<?import b.B?>\n"+insets+"\n"+region+"\n\n<BorderPane/>", got)
	})

	t.Run("only the missing declaration is added", func(t *testing.T) {
		in := insets + "\n<?import b.B?>\n<VBox/>"

		got, added := AddImports(in)

		assert.Equal(t, []string{region}, added)
		assert.Equal(t, 1, strings.Count(got, insets), "present import must not be duplicated")
		assert.Equal(t, insets+"\n<?import b.B?>\n"+region+"\n<VBox/>", got)
	})

	t.Run("both present is a no-op", func(t *testing.T) {
		in := region + "\n" + insets + "\n<VBox/>"

		got, added := AddImports(in)

		assert.Nil(t, added)
		assert.Equal(t, in, got)
	})

	t.Run("no import declarations to anchor on", func(t *testing.T) {
		in := "<?xml version=\"1.0\"?>\n<VBox/>"

		got, added := AddImports(in)

		assert.Nil(t, added)
		assert.Equal(t, in, got)
	})
}
