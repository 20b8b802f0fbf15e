package analytics

// trimOrder enforces a count cap on a registry: while the order slice
// exceeds the limit, the oldest-first-seen id is evicted through the
// callback and dropped from the front. The lead, conversation, and email
// registries all share this policy, mirroring the bounded treatment of the
// sample buffers.
func trimOrder(order []string, limit int, evict func(id string)) []string {
	if limit < 1 {
		return order
	}
	for len(order) > limit {
		evict(order[0])
		order = order[1:]
	}
	return order
}
