package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Name string

	Navbar         *lipgloss.Style
	NavbarScrolled *lipgloss.Style
	Brand          *lipgloss.Style
	NavLink        *lipgloss.Style
	NavLinkActive  *lipgloss.Style
	NavToggle      *lipgloss.Style

	Heading *lipgloss.Style
	Title   *lipgloss.Style
	Body    *lipgloss.Style
	Muted   *lipgloss.Style
	Accent  *lipgloss.Style
	Hidden  *lipgloss.Style
	Tag     *lipgloss.Style

	BarFilled *lipgloss.Style
	BarEmpty  *lipgloss.Style
	Orb       *lipgloss.Style

	FieldLabel      *lipgloss.Style
	FieldLabelFocus *lipgloss.Style
	FieldLabelError *lipgloss.Style
	Error           *lipgloss.Style
	Success         *lipgloss.Style
	Button          *lipgloss.Style
	ButtonFocus     *lipgloss.Style
	ButtonDisabled  *lipgloss.Style

	MenuTitle         *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Help              *lipgloss.Style
	Footer            *lipgloss.Style
}

var darkStyles = Styles{
	Name: "dark",
	Navbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	NavbarScrolled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	NavLink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	NavLinkActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	NavToggle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Accent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	),
	Hidden: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	),
	Tag: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Background(lipgloss.Color("237")),
	),
	BarFilled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	),
	BarEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Orb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	),
	FieldLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FieldLabelFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	FieldLabelError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Padding(0, 2),
	),
	ButtonFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("75")).Bold(true).Padding(0, 2),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("238")).Padding(0, 2),
	),
	MenuTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
}

var lightStyles = Styles{
	Name: "light",
	Navbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	NavbarScrolled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")),
	),
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	NavLink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	NavLinkActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	NavToggle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Accent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("127")).Bold(true),
	),
	Hidden: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Tag: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Background(lipgloss.Color("254")),
	),
	BarFilled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	),
	BarEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Orb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	),
	FieldLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FieldLabelFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	FieldLabelError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Padding(0, 2),
	),
	ButtonFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("19")).Bold(true).Padding(0, 2),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("252")).Padding(0, 2),
	),
	MenuTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("253")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
}

// Default exposes the dark style set the page starts with.
func Default() *Styles {
	return &darkStyles
}

// For returns the style set for a theme name. Anything other than "light"
// gets the dark set.
func For(name string) *Styles {
	if name == lightStyles.Name {
		return &lightStyles
	}
	return &darkStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
