package junction

// Lane is a FIFO queue of vehicles for one traffic movement. Insertion order is
// arrival order and is never changed, so the head is always the longest-waiting
// vehicle. The one sanctioned exception is priority injection, which places a
// vehicle at the head through Intersection.InjectPriorityVehicle.
//
// A Lane is owned exclusively by its Intersection and is not safe for
// concurrent use on its own.
type Lane struct {
	key      string
	vehicles []Vehicle
}

func newLane(key string) *Lane {
	return &Lane{
		key:      key,
		vehicles: make([]Vehicle, 0),
	}
}

// Key returns the movement key identifying this lane
func (l *Lane) Key() string {
	return l.key
}

// Enqueue appends a vehicle to the tail of the queue
func (l *Lane) Enqueue(v Vehicle) {
	l.vehicles = append(l.vehicles, v)
}

// Dequeue removes and returns the head of the queue. The second return value
// is false when the lane is empty; an empty dequeue is normal operation, not
// an error.
func (l *Lane) Dequeue() (Vehicle, bool) {
	if len(l.vehicles) == 0 {
		return Vehicle{}, false
	}
	head := l.vehicles[0]
	l.vehicles = l.vehicles[1:]
	return head, true
}

// promote inserts a vehicle at the head of the queue, ahead of all waiting
// traffic. Only priority injection may call this.
func (l *Lane) promote(v Vehicle) {
	l.vehicles = append([]Vehicle{v}, l.vehicles...)
}

// Count returns the number of queued vehicles
func (l *Lane) Count() int {
	return len(l.vehicles)
}

// Head returns the longest-waiting vehicle without removing it. The second
// return value is false when the lane is empty.
func (l *Lane) Head() (Vehicle, bool) {
	if len(l.vehicles) == 0 {
		return Vehicle{}, false
	}
	return l.vehicles[0], true
}

// HeadWait returns how long the head vehicle has been waiting as of now,
// or 0 when the lane is empty.
func (l *Lane) HeadWait(now int) int {
	if len(l.vehicles) == 0 {
		return 0
	}
	return l.vehicles[0].Wait(now)
}

// Vehicles returns a copy of the queue in order, head first
func (l *Lane) Vehicles() []Vehicle {
	out := make([]Vehicle, len(l.vehicles))
	copy(out, l.vehicles)
	return out
}
