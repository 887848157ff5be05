// Package terminal puts the controlling terminal into raw mode and reads
// input one byte at a time with a timeout.
//
// Raw mode disables echo, canonical line editing, signal keys, flow control
// and output post-processing. Reads return after at most the configured
// timeout; a read that delivers nothing is reported as key.ErrTimeout so the
// editor loop can refresh the screen and poll for other work.
//
// Usage:
//
//	term, err := terminal.Open(os.Stdin, os.Stdout, 100*time.Millisecond)
//	if err != nil {
//		return err
//	}
//	defer term.Restore()
//
//	dec := key.NewDecoder(term)
package terminal
