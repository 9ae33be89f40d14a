package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; one tick is 1/TPS seconds.
	TPS = 60
)
