package stream

// DefaultMaxFrame bounds the size of one frame unless WithMaxFrame says
// otherwise.
const DefaultMaxFrame = 8 << 20

// StreamOption configures a Decoder.
type StreamOption func(*streamOpts)

type streamOpts struct {
	maxFrame int
}

// WithMaxFrame limits a frame to n bytes, not counting its separator.
func WithMaxFrame(n int) StreamOption {
	return func(opts *streamOpts) {
		opts.maxFrame = n
	}
}
