// Package capture wraps the barcode decoding capability.
//
// A Decoder streams decode events from a camera (or any line-oriented
// source). The Scanner turns that stream into one accepted value per arm:
// Next starts the camera on first use, discards anything decoded while
// disarmed, and waits for a single decode bounded by the arm window. When the
// window passes without a decode, Next returns ErrAcquisitionTimeout and the
// caller simply arms again.
//
// # Decoders
//
//   - LineDecoder: values read line by line from an io.Reader (keyboard-wedge
//     scanners, piped standard input).
//   - CommandDecoder: an external decoder process such as zbarcam, whose stdout
//     carries one value per line.
//
// Torch and zoom are optional capabilities; unsupported controls return
// ErrUnavailable and never abort the session.
package capture
