package brick

// Material indexes the fixed material table written to every save.
type Material uint32

const (
	Plastic  Material = iota // BMC_Plastic
	Glow                     // BMC_Glow
	Metallic                 // BMC_Metallic
)

// Materials is the fixed material table; its order matches the Material
// constants.
var Materials = []string{Plastic.String(), Glow.String(), Metallic.String()}

// MaterialFor maps a Blockland color effect code to a material.
func MaterialFor(colorFx uint8) Material {
	switch colorFx {
	case 3:
		return Glow
	case 1, 2:
		return Metallic
	default:
		return Plastic
	}
}
