package view

// Accent is a colour token handed through to the styling system.
type Accent string

const (
	Amber400  Accent = "amber-400"
	Blue500   Accent = "blue-500"
	Sky400    Accent = "sky-400"
	Amber500  Accent = "amber-500"
	Green500  Accent = "green-500"
	Purple500 Accent = "purple-500"
)

// BorderClass returns the border utility class for the token.
func (a Accent) BorderClass() string {
	return "border-" + string(a)
}

// TextClass returns the text colour utility class for the token.
func (a Accent) TextClass() string {
	return "text-" + string(a)
}
