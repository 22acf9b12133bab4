package priority

// Sequencing selects how the tie-breaking sequence number of a new entry is
// chosen.
type Sequencing int

const (
	// SizeSequence uses the number of entries stored before the insert.
	// Once entries have been popped a later insert can receive the same
	// sequence as a live entry of equal priority; that entry is then
	// replaced.
	SizeSequence Sequencing = iota

	// MonotonicSequence uses a per-queue counter that grows on every
	// insert and is never reset, so keys are never reused.
	MonotonicSequence
)

func (s Sequencing) String() string {
	switch s {
	case SizeSequence:
		return "size"
	case MonotonicSequence:
		return "monotonic"
	default:
		return "unknown"
	}
}

// options defines the configuration of a Queue.
type options struct {
	sequencing Sequencing
}

// Option is a function that configures a Queue.
type Option func(*options)

// WithSequencing sets the sequencing mode.
func WithSequencing(s Sequencing) Option {
	return func(o *options) {
		o.sequencing = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		sequencing: SizeSequence,
	}
}
