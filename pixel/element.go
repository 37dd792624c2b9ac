package pixel

import "strconv"

// Depth is the storage width of a single channel.
type Depth uint8

const (
	DepthNone Depth = iota
	Depth1
	Depth4
	Depth5
	Depth6
	Depth8
	Depth16
	Depth32F
)

var depthBits = [...]int{
	DepthNone: 0,
	Depth1:    1,
	Depth4:    4,
	Depth5:    5,
	Depth6:    6,
	Depth8:    8,
	Depth16:   16,
	Depth32F:  32,
}

// Bits returns the number of bits a channel of depth d occupies.
func (d Depth) Bits() int {
	if int(d) >= len(depthBits) {
		return 0
	}
	return depthBits[d]
}

// IsFloating reports whether d is backed by an IEEE 754 float.
func (d Depth) IsFloating() bool { return d == Depth32F }

func (d Depth) String() string {
	if d == Depth32F {
		return "32F"
	}
	return strconv.Itoa(d.Bits())
}

// Role is the semantic meaning of a channel.
type Role uint8

const (
	RoleEmpty Role = iota
	RoleUndefined
	RoleRed
	RoleGreen
	RoleBlue
	RoleAlpha
	RoleLuminance
	RoleRedPremul
	RoleGreenPremul
	RoleBluePremul
)

var roleNames = [...]string{
	RoleEmpty:       "Empty",
	RoleUndefined:   "Undefined",
	RoleRed:         "Red",
	RoleGreen:       "Green",
	RoleBlue:        "Blue",
	RoleAlpha:       "Alpha",
	RoleLuminance:   "Luminance",
	RoleRedPremul:   "RedPremul",
	RoleGreenPremul: "GreenPremul",
	RoleBluePremul:  "BluePremul",
}

func (r Role) String() string {
	if int(r) >= len(roleNames) {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// ElementID identifies a channel by role and depth. The low three bits
// hold the Depth and the remaining bits hold the Role, so an ElementID
// always fits in a single byte of a packed Format code.
type ElementID uint8

func elementID(r Role, d Depth) ElementID {
	return ElementID(uint8(r)<<3 | uint8(d))
}

// The closed set of channel identifiers. Any other byte value is
// rejected by Format constructors.
const (
	EmptyID ElementID = 0

	Undefined1ID   = ElementID(RoleUndefined<<3) | ElementID(Depth1)
	Undefined4ID   = ElementID(RoleUndefined<<3) | ElementID(Depth4)
	Undefined8ID   = ElementID(RoleUndefined<<3) | ElementID(Depth8)
	Undefined16ID  = ElementID(RoleUndefined<<3) | ElementID(Depth16)
	Undefined32FID = ElementID(RoleUndefined<<3) | ElementID(Depth32F)

	Red4ID   = ElementID(RoleRed<<3) | ElementID(Depth4)
	Red5ID   = ElementID(RoleRed<<3) | ElementID(Depth5)
	Red8ID   = ElementID(RoleRed<<3) | ElementID(Depth8)
	Red16ID  = ElementID(RoleRed<<3) | ElementID(Depth16)
	Red32FID = ElementID(RoleRed<<3) | ElementID(Depth32F)

	Green4ID   = ElementID(RoleGreen<<3) | ElementID(Depth4)
	Green5ID   = ElementID(RoleGreen<<3) | ElementID(Depth5)
	Green6ID   = ElementID(RoleGreen<<3) | ElementID(Depth6)
	Green8ID   = ElementID(RoleGreen<<3) | ElementID(Depth8)
	Green16ID  = ElementID(RoleGreen<<3) | ElementID(Depth16)
	Green32FID = ElementID(RoleGreen<<3) | ElementID(Depth32F)

	Blue4ID   = ElementID(RoleBlue<<3) | ElementID(Depth4)
	Blue5ID   = ElementID(RoleBlue<<3) | ElementID(Depth5)
	Blue8ID   = ElementID(RoleBlue<<3) | ElementID(Depth8)
	Blue16ID  = ElementID(RoleBlue<<3) | ElementID(Depth16)
	Blue32FID = ElementID(RoleBlue<<3) | ElementID(Depth32F)

	Alpha1ID   = ElementID(RoleAlpha<<3) | ElementID(Depth1)
	Alpha4ID   = ElementID(RoleAlpha<<3) | ElementID(Depth4)
	Alpha8ID   = ElementID(RoleAlpha<<3) | ElementID(Depth8)
	Alpha16ID  = ElementID(RoleAlpha<<3) | ElementID(Depth16)
	Alpha32FID = ElementID(RoleAlpha<<3) | ElementID(Depth32F)

	Luminance8ID   = ElementID(RoleLuminance<<3) | ElementID(Depth8)
	Luminance16ID  = ElementID(RoleLuminance<<3) | ElementID(Depth16)
	Luminance32FID = ElementID(RoleLuminance<<3) | ElementID(Depth32F)

	RedPremul8ID     = ElementID(RoleRedPremul<<3) | ElementID(Depth8)
	RedPremul32FID   = ElementID(RoleRedPremul<<3) | ElementID(Depth32F)
	GreenPremul8ID   = ElementID(RoleGreenPremul<<3) | ElementID(Depth8)
	GreenPremul32FID = ElementID(RoleGreenPremul<<3) | ElementID(Depth32F)
	BluePremul8ID    = ElementID(RoleBluePremul<<3) | ElementID(Depth8)
	BluePremul32FID  = ElementID(RoleBluePremul<<3) | ElementID(Depth32F)
)

var knownElements = map[ElementID]struct{}{
	EmptyID: {},
	Undefined1ID: {}, Undefined4ID: {}, Undefined8ID: {}, Undefined16ID: {}, Undefined32FID: {},
	Red4ID: {}, Red5ID: {}, Red8ID: {}, Red16ID: {}, Red32FID: {},
	Green4ID: {}, Green5ID: {}, Green6ID: {}, Green8ID: {}, Green16ID: {}, Green32FID: {},
	Blue4ID: {}, Blue5ID: {}, Blue8ID: {}, Blue16ID: {}, Blue32FID: {},
	Alpha1ID: {}, Alpha4ID: {}, Alpha8ID: {}, Alpha16ID: {}, Alpha32FID: {},
	Luminance8ID: {}, Luminance16ID: {}, Luminance32FID: {},
	RedPremul8ID: {}, RedPremul32FID: {},
	GreenPremul8ID: {}, GreenPremul32FID: {},
	BluePremul8ID: {}, BluePremul32FID: {},
}

// Valid reports whether id is a member of the closed set of element
// identifiers.
func (id ElementID) Valid() bool {
	_, ok := knownElements[id]
	return ok
}

// Role returns the channel role encoded in id.
func (id ElementID) Role() Role { return Role(id >> 3) }

// Depth returns the channel depth encoded in id.
func (id ElementID) Depth() Depth { return Depth(id & 0x7) }

// Element returns the Element wrapping id.
func (id ElementID) Element() Element { return Element{ID: id} }

func (id ElementID) String() string {
	if id == EmptyID {
		return "Empty"
	}
	return id.Role().String() + id.Depth().String()
}

// Element is a single channel slot of a Format.
type Element struct {
	ID ElementID
}

// BitCount returns the number of bits the element occupies.
func (e Element) BitCount() int { return e.ID.Depth().Bits() }

// ByteCount returns the number of whole bytes the element occupies.
// It is only meaningful for 8, 16 and 32 bit elements.
func (e Element) ByteCount() int { return e.BitCount() / 8 }

func (e Element) IsEmpty() bool     { return e.ID == EmptyID }
func (e Element) IsUndefined() bool { return e.ID.Role() == RoleUndefined }
func (e Element) IsAlpha() bool     { return e.ID.Role() == RoleAlpha }
func (e Element) IsGrey() bool      { return e.ID.Role() == RoleLuminance }
func (e Element) IsFloating() bool  { return e.ID.Depth().IsFloating() }

// IsPremul reports whether the element is a color channel that has
// been multiplied by alpha.
func (e Element) IsPremul() bool {
	switch e.ID.Role() {
	case RoleRedPremul, RoleGreenPremul, RoleBluePremul:
		return true
	default:
		return false
	}
}

// IsRed reports whether the element carries red, either straight or
// premultiplied. IsGreen and IsBlue behave the same way.
func (e Element) IsRed() bool {
	r := e.ID.Role()
	return r == RoleRed || r == RoleRedPremul
}

func (e Element) IsGreen() bool {
	r := e.ID.Role()
	return r == RoleGreen || r == RoleGreenPremul
}

func (e Element) IsBlue() bool {
	r := e.ID.Role()
	return r == RoleBlue || r == RoleBluePremul
}

func (e Element) String() string { return e.ID.String() }
