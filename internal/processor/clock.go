package processor

import "time"

// nowUTC is swappable in tests that assert audit timestamps.
var nowUTC = func() time.Time { return time.Now().UTC() }
