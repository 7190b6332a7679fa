package epoch

// Field keys of an epoch record, as named in the OEM ephemeris.
const (
	FieldEpoch = "EPOCH"
	FieldX     = "X"
	FieldY     = "Y"
	FieldZ     = "Z"
	FieldXDot  = "X_DOT"
	FieldYDot  = "Y_DOT"
	FieldZDot  = "Z_DOT"
)

// Quantity is a raw ephemeris value with its units attribute.
// The text is kept as published; no numeric parsing happens at load time.
type Quantity struct {
	value string
	units string
}

// NewQuantity creates a Quantity.
func NewQuantity(value, units string) Quantity {
	return Quantity{value: value, units: units}
}

// Value returns the raw text value.
func (q Quantity) Value() string { return q.value }

// Units returns the units attribute (km, km/s), possibly empty.
func (q Quantity) Units() string { return q.units }

// Epoch is a timestamped ISS state vector (immutable value object).
type Epoch struct {
	epoch    string
	position [3]Quantity
	velocity [3]Quantity
}

// New creates an Epoch from its timestamp, position (X, Y, Z) and velocity (X_DOT, Y_DOT, Z_DOT).
func New(epoch string, position, velocity [3]Quantity) Epoch {
	return Epoch{epoch: epoch, position: position, velocity: velocity}
}

// Epoch returns the timestamp identifier, e.g. "2022-042T12:00:00.000Z".
func (e Epoch) Epoch() string { return e.epoch }

// X returns the X position component.
func (e Epoch) X() Quantity { return e.position[0] }

// Y returns the Y position component.
func (e Epoch) Y() Quantity { return e.position[1] }

// Z returns the Z position component.
func (e Epoch) Z() Quantity { return e.position[2] }

// XDot returns the X velocity component.
func (e Epoch) XDot() Quantity { return e.velocity[0] }

// YDot returns the Y velocity component.
func (e Epoch) YDot() Quantity { return e.velocity[1] }

// ZDot returns the Z velocity component.
func (e Epoch) ZDot() Quantity { return e.velocity[2] }

// Field returns the value of the named field. Empty values count as absent.
func (e Epoch) Field(key string) (string, bool) {
	var v string
	switch key {
	case FieldEpoch:
		v = e.epoch
	case FieldX:
		v = e.position[0].value
	case FieldY:
		v = e.position[1].value
	case FieldZ:
		v = e.position[2].value
	case FieldXDot:
		v = e.velocity[0].value
	case FieldYDot:
		v = e.velocity[1].value
	case FieldZDot:
		v = e.velocity[2].value
	default:
		return "", false
	}
	return v, v != ""
}
