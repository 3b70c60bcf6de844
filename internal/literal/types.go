package literal

// sizeBits is the pointer width used for isize/usize bounds. It is
// fixed at 64 so that decoding does not depend on the host GOARCH.
const sizeBits = 64

// IntType names a concrete integer literal type by its suffix spelling.
type IntType uint8

const (
	// IntNone means no suffix was written; the concrete type is resolved
	// from Options at decode time.
	IntNone IntType = iota
	I8
	I16
	I32
	I64
	I128
	ISize
	U8
	U16
	U32
	U64
	U128
	USize
)

// Signed reports whether the type is signed. IntNone counts as signed,
// matching the suffix-less default.
func (t IntType) Signed() bool { return t <= ISize }

// Bits returns the type's width in bits, or 0 for IntNone.
func (t IntType) Bits() uint {
	switch t {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64:
		return 64
	case I128, U128:
		return 128
	case ISize, USize:
		return sizeBits
	default:
		return 0
	}
}

func (t IntType) String() string {
	switch t {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case ISize:
		return "isize"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case USize:
		return "usize"
	default:
		return ""
	}
}

// ParseIntType maps a suffix spelling to its type. The empty string
// maps to IntNone; unknown spellings report false.
func ParseIntType(s string) (IntType, bool) {
	switch s {
	case "":
		return IntNone, true
	case "i8":
		return I8, true
	case "i16":
		return I16, true
	case "i32":
		return I32, true
	case "i64":
		return I64, true
	case "i128":
		return I128, true
	case "isize":
		return ISize, true
	case "u8":
		return U8, true
	case "u16":
		return U16, true
	case "u32":
		return U32, true
	case "u64":
		return U64, true
	case "u128":
		return U128, true
	case "usize":
		return USize, true
	}
	return IntNone, false
}

// FloatType names a concrete float literal type by its suffix spelling.
type FloatType uint8

const (
	// FloatNone means no suffix was written; resolved from Options.
	FloatNone FloatType = iota
	F32
	F64
)

// Bits returns the type's width in bits, or 0 for FloatNone.
func (t FloatType) Bits() uint {
	switch t {
	case F32:
		return 32
	case F64:
		return 64
	default:
		return 0
	}
}

func (t FloatType) String() string {
	switch t {
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return ""
	}
}

// ParseFloatType maps a suffix spelling to its type. The empty string
// maps to FloatNone; unknown spellings report false.
func ParseFloatType(s string) (FloatType, bool) {
	switch s {
	case "":
		return FloatNone, true
	case "f32":
		return F32, true
	case "f64":
		return F64, true
	}
	return FloatNone, false
}
