// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Picker       *PickerHandler
	Calendar     *CalendarHandler
	Reservations *ReservationHandler
	Inventory    *InventoryHandler
}
