package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ContainerKind
	}{
		{"border pane root", `<BorderPane xmlns="x">`, BorderPane},
		{"border pane wins over vbox", "<VBox xmlns=\"x\">\n<BorderPane/>\n</VBox>", BorderPane},
		{"vbox with namespace", `<VBox xmlns="http://javafx.com/javafx/21" spacing="4">`, TopLevelList},
		{"vbox with namespace on a later line", "<VBox spacing=\"4\"\n      xmlns:fx=\"http://javafx.com/fxml/1\">", TopLevelList},
		{"vbox without namespace", `<VBox spacing="4">`, Unsupported},
		{"import of vbox only", `<?import javafx.scene.layout.VBox?>`, Unsupported},
		{"vbox prefix of other tag", `<VBoxed xmlns="x">`, Unsupported},
		{"grid pane", `<GridPane xmlns="x">`, Unsupported},
		{"empty", "", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestHasNavigationBar(t *testing.T) {
	assert.True(t, HasNavigationBar(`fx:id="navBackButton"`))
	assert.True(t, HasNavigationBar(`styleClass="nav-button nav-back-button"`))
	assert.False(t, HasNavigationBar(`fx:id="navForwardButton"`))
}

func TestSpliceAfterTag(t *testing.T) {
	t.Run("tag ends its line", func(t *testing.T) {
		got := spliceAfterTag("<A>  \nrest", 3, "B\n", "\n")
		assert.Equal(t, "<A>  \n\nB\n\nrest", got)
	})

	t.Run("tag followed by markup", func(t *testing.T) {
		got := spliceAfterTag("<A>rest", 3, "B\n", "\n")
		assert.Equal(t, "<A>\n\nB\n\nrest", got)
	})
}
