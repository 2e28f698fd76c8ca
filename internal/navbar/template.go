package navbar

import "strings"

// DefaultStylesheet is the stylesheet reference appended to a layout's
// stylesheets attribute. It is relative to the FXML directory.
const DefaultStylesheet = "@../../css/navigation.css"

// Markers identifying an existing navigation bar.
const (
	BackButtonClass = "nav-back-button"
	BackButtonID    = "navBackButton"
)

// Import declarations the navigation bar depends on. The marker is the text
// searched for; a declaration written with different spacing still counts.
var requiredImports = []struct {
	marker string
	decl   string
}{
	{marker: "import javafx.geometry.Insets", decl: "<?import javafx.geometry.Insets?>"},
	{marker: "import javafx.scene.layout.Region", decl: "<?import javafx.scene.layout.Region?>"},
}

// topRegionBlock is inserted into BorderPane layouts.
const topRegionBlock = `    <!-- Navigation Bar -->
    <top>
        <HBox alignment="CENTER_LEFT" spacing="10" styleClass="standalone-nav-bar">
            <padding>
                <Insets bottom="8.0" left="20.0" right="20.0" top="8.0" />
            </padding>
            <children>
                <Button styleClass="nav-button nav-back-button" text="◀ Back" fx:id="navBackButton" />
                <Button styleClass="nav-button nav-forward-button" text="Forward ▶" fx:id="navForwardButton" />
                <Button styleClass="nav-button nav-reload-button" text="⟳ Reload" fx:id="navReloadButton" />
                <Region HBox.hgrow="ALWAYS" />
            </children>
        </HBox>
    </top>
`

// listBlock is inserted directly into a list container's children.
const listBlock = `        <HBox alignment="CENTER_LEFT" spacing="10" styleClass="standalone-nav-bar">
            <padding>
                <Insets bottom="8.0" left="20.0" right="20.0" top="8.0" />
            </padding>
            <children>
                <Button styleClass="nav-button nav-back-button" text="◀ Back" fx:id="navBackButton" />
                <Button styleClass="nav-button nav-forward-button" text="Forward ▶" fx:id="navForwardButton" />
                <Button styleClass="nav-button nav-reload-button" text="⟳ Reload" fx:id="navReloadButton" />
                <Region HBox.hgrow="ALWAYS" />
            </children>
        </HBox>
`

const (
	childrenOpen  = "    <children>\n"
	childrenClose = "    </children>\n"
)

// Block returns the navigation block for a container kind, or "" when the
// container is unsupported.
func Block(kind ContainerKind) string {
	switch kind {
	case BorderPane:
		return topRegionBlock
	case TopLevelList:
		return listBlock
	default:
		return ""
	}
}

// HasNavigationBar reports whether the text already carries a navigation bar.
func HasNavigationBar(content string) bool {
	return strings.Contains(content, BackButtonClass) || strings.Contains(content, BackButtonID)
}

// lineEnding returns the line terminator used by the text.
func lineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// withLineEnding rewrites a template's newlines to nl.
func withLineEnding(s, nl string) string {
	if nl == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", nl)
}
