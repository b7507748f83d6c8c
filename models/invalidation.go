package models

// Topic is the server-side name of an invalidation channel. Topics map 1:1
// onto model-type notification names; resolution can fail for topics this
// client version does not know about.
type Topic string

// topicToModelType is the inverse of the model-type notification names.
var topicToModelType = func() map[Topic]ModelType {
	m := make(map[Topic]ModelType, len(modelTypeNames))
	for t, name := range modelTypeNames {
		if t.IsReal() {
			m[Topic(name)] = t
		}
	}
	return m
}()

// TopicToModelType resolves a topic to its model type. The second return is
// false for unknown topics.
func TopicToModelType(topic Topic) (ModelType, bool) {
	t, ok := topicToModelType[topic]
	return t, ok
}

// ModelTypeSetToTopics returns the topic names for every member of the set.
func ModelTypeSetToTopics(types ModelTypeSet) []Topic {
	out := make([]Topic, 0, 8)
	for _, t := range types.Types() {
		out = append(out, Topic(t.String()))
	}
	return out
}

// Invalidation is a single server-pushed "something changed" signal.
//
// A known-version invalidation carries a monotonic version used for
// de-duplication. An unknown-version invalidation carries no ordering
// information and must always be delivered.
type Invalidation struct {
	Version        int64
	UnknownVersion bool
	Payload        string
}

// TopicInvalidationMap groups incoming invalidations by topic, preserving
// per-topic arrival order.
type TopicInvalidationMap map[Topic][]Invalidation
