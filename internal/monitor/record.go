package monitor

// Raw SGR sequences used when composing record bodies. Records carry ANSI
// escapes end to end; the renderer converts them to HTML in one pass.
const (
	sgrWhite = "\x1b[37m"
	sgrRed   = "\x1b[31m"
	sgrReset = "\x1b[0m"
)

// PlaceholderLine is the record body written for a host before its first
// successful poll.
func PlaceholderLine(host string) string {
	return hostPrefix(host) + "Loading ...\n"
}

// ErrorLine is the terminal record body written when a host's monitor gives
// up: the host prefix followed by the failure reason in red.
func ErrorLine(host, msg string) string {
	return hostPrefix(host) + sgrRed + msg + sgrReset + "\n"
}

func hostPrefix(host string) string {
	return sgrWhite + "(" + host + ") " + sgrReset
}
