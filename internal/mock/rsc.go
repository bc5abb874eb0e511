package mock

import "io"

// noopRSC turns a ReadSeeker into a ReadSeekCloser with a no-op Close.
type noopRSC struct{ io.ReadSeeker }

func (noopRSC) Close() error { return nil }
