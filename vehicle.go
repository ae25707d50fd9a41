package junction

// VehicleID identifies a vehicle within one simulation instance.
// IDs are monotonically increasing in creation order.
type VehicleID int

// VehicleClass categorizes a vehicle for scheduling purposes
type VehicleClass string

const (
	// ClassCar is ordinary traffic
	ClassCar VehicleClass = "car"
	// ClassAmbulance is a priority vehicle
	ClassAmbulance VehicleClass = "ambulance"
	// ClassFireTruck is a priority vehicle
	ClassFireTruck VehicleClass = "fire_truck"
	// ClassPolice is a priority vehicle
	ClassPolice VehicleClass = "police"
)

// PriorityClasses lists the classes treated as priority vehicles, in a fixed order
var PriorityClasses = []VehicleClass{ClassAmbulance, ClassFireTruck, ClassPolice}

// Valid reports whether the class is one of the known vehicle classes
func (c VehicleClass) Valid() bool {
	switch c {
	case ClassCar, ClassAmbulance, ClassFireTruck, ClassPolice:
		return true
	}
	return false
}

// TurnIntent is the movement a vehicle intends at the stop line
type TurnIntent string

const (
	// TurnStraight crosses the intersection without turning
	TurnStraight TurnIntent = "straight"
	// TurnLeft turns across opposing traffic
	TurnLeft TurnIntent = "left"
)

// Vehicle is an immutable record of one vehicle waiting at the intersection.
// It is created when the vehicle enters a lane and discarded at discharge.
type Vehicle struct {
	ID          VehicleID    `json:"id"`
	Class       VehicleClass `json:"class"`
	ArrivalTime int          `json:"arrival_time"`
	Intent      TurnIntent   `json:"turn_intent"`
}

// IsPriority reports whether the vehicle preempts normal scheduling
func (v Vehicle) IsPriority() bool {
	switch v.Class {
	case ClassAmbulance, ClassFireTruck, ClassPolice:
		return true
	}
	return false
}

// Wait returns how many ticks the vehicle has been waiting as of now
func (v Vehicle) Wait(now int) int {
	return now - v.ArrivalTime
}

// idGenerator issues vehicle IDs for one simulation instance. Each instance
// owns its own generator, so parallel instances never contend or collide.
type idGenerator struct {
	next VehicleID
}

func newIDGenerator() *idGenerator {
	return &idGenerator{next: 1}
}

// Next returns the next vehicle ID
func (g *idGenerator) Next() VehicleID {
	id := g.next
	g.next++
	return id
}

// Issued returns how many IDs this generator has handed out
func (g *idGenerator) Issued() int {
	return int(g.next) - 1
}
