package shared

type Slot string

const (
	SlotMainHand Slot = "main-hand"
	SlotOffHand  Slot = "off-hand"
	SlotBody     Slot = "body"
	SlotNone     Slot = "none"
)
