package coffee

// Options is the typed form of the compiler option bag. There is no
// inline-source-map field: that key is stripped before the bag reaches the
// compiler, and the typed options cannot express it.
type Options struct {
	Bare     bool   `mapstructure:"bare"`
	Header   bool   `mapstructure:"header"`
	Literate bool   `mapstructure:"literate"`
	Filename string `mapstructure:"filename"`
}
