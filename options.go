package drawer

// UpdatePredicate reports whether the drawer's content changed since it was
// last committed. It is consulted once per Commit.
type UpdatePredicate func() bool

// Option configures a Drawer during creation.
//
// Example:
//
//	d := drawer.New(content, win, drawer.WithUpdatePredicate(bar.Dirty))
type Option func(*drawerOptions)

// drawerOptions holds optional configuration for Drawer creation.
type drawerOptions struct {
	needsUpdate UpdatePredicate
}

// defaultOptions returns the default drawer options.
func defaultOptions() drawerOptions {
	return drawerOptions{
		needsUpdate: alwaysUpdate,
	}
}

func alwaysUpdate() bool { return true }

// WithUpdatePredicate sets the predicate that gates painting. A nil
// predicate restores the default, which always paints.
func WithUpdatePredicate(p UpdatePredicate) Option {
	return func(o *drawerOptions) {
		if p == nil {
			p = alwaysUpdate
		}
		o.needsUpdate = p
	}
}

// CommitOption configures a single Commit call.
//
// Example:
//
//	// Repaint a 20x10 area at (90, 0) on a 2x output.
//	d.Commit(90, 0, drawer.WithSize(20, 10), drawer.WithScale(2))
type CommitOption func(*commitOptions)

// commitOptions holds the arguments of one Commit call.
type commitOptions struct {
	width, height       int
	hasWidth, hasHeight bool
	srcX, srcY          int
	scale               float64

	// needsUpdate overrides the drawer's predicate when set.
	needsUpdate *bool
}

// defaultCommitOptions returns the arguments of a Commit without options:
// content-sized, unscaled, reading content from its origin.
func defaultCommitOptions() commitOptions {
	return commitOptions{scale: 1}
}

// WithSize sets the logical width and height to commit. Without it the
// content's own size is used.
func WithSize(width, height int) CommitOption {
	return func(o *commitOptions) {
		o.width, o.hasWidth = width, true
		o.height, o.hasHeight = height, true
	}
}

// WithWidth sets only the logical width to commit.
func WithWidth(width int) CommitOption {
	return func(o *commitOptions) {
		o.width, o.hasWidth = width, true
	}
}

// WithHeight sets only the logical height to commit.
func WithHeight(height int) CommitOption {
	return func(o *commitOptions) {
		o.height, o.hasHeight = height, true
	}
}

// WithSource selects the point of the content that lands at the commit
// offset, so a part of previously recorded content can be shown somewhere
// else. The default is (0, 0).
func WithSource(srcX, srcY int) CommitOption {
	return func(o *commitOptions) {
		o.srcX, o.srcY = srcX, srcY
	}
}

// WithScale sets the logical-to-device scale factor. The factor must be
// strictly positive; it is not validated here (see config.Config.Validate).
func WithScale(scale float64) CommitOption {
	return func(o *commitOptions) {
		o.scale = scale
	}
}

// WithNeedsUpdate overrides the drawer's update predicate for this call.
func WithNeedsUpdate(needed bool) CommitOption {
	return func(o *commitOptions) {
		o.needsUpdate = &needed
	}
}
