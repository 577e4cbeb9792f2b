// Package keymap loads and saves XML keymap documents.
//
// A keymap has a root element whose children are actions. Each action holds
// zero or more keyboard-shortcut elements:
//
//	<keymap version="1" name="custom">
//	  <action id="EditorIncreaseFontSize">
//	    <keyboard-shortcut first-keystroke="meta control EQUALS"/>
//	  </action>
//	</keymap>
//
// Documents round-trip: comments, whitespace, attribute order and the XML
// declaration are kept, and a declared legacy encoding such as ISO-8859-1 is
// decoded on read and used again on write. Nothing beyond locating
// keyboard-shortcut elements is validated.
package keymap
