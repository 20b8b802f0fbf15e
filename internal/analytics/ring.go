package analytics

// ring is a fixed-capacity circular buffer of response-time samples in
// milliseconds. Once full, each push evicts the oldest sample. Not
// goroutine-safe on its own; the engine mutex guards all access.
type ring struct {
	samples  []int64
	capacity int
	next     int
	size     int
}

func newRing(capacity int) *ring {
	if capacity < 1 {
		capacity = 1
	}
	return &ring{
		samples:  make([]int64, capacity),
		capacity: capacity,
	}
}

func (r *ring) push(v int64) {
	r.samples[r.next] = v
	r.next = (r.next + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}
}

func (r *ring) len() int {
	return r.size
}

// average returns the mean of the retained samples, 0 when empty.
func (r *ring) average() float64 {
	if r.size == 0 {
		return 0
	}
	var sum int64
	for i := 0; i < r.size; i++ {
		sum += r.samples[i]
	}
	return float64(sum) / float64(r.size)
}

// values returns the retained samples, oldest first.
func (r *ring) values() []int64 {
	out := make([]int64, 0, r.size)
	if r.size < r.capacity {
		out = append(out, r.samples[:r.size]...)
		return out
	}
	out = append(out, r.samples[r.next:]...)
	out = append(out, r.samples[:r.next]...)
	return out
}
