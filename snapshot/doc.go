// Package snapshot writes and reads binned histograms in a compact binary
// form, so filled histograms can be handed to plotting or fitting tools.
//
// A snapshot stores the name, the axis layout and one float64 per flat bin in
// binner storage order. Layout:
//
//	offset  size  field
//	0       4     magic "HBIN"
//	4       1     version
//	5       1     flags (bit 0: big-endian)
//	6       1     compression type (format.CompressionType)
//	7       1     number of axes
//	8       4     number of values
//	12      4     uncompressed payload length
//	16      8     xxHash64 of the uncompressed payload
//	24      ...   payload, compressed as a whole
//
// The payload holds, per axis, nbins (u32), spec flags (u8), edge count (u32),
// the edges (f64) and the axis kind (u16 length + bytes), followed by the
// values (f64) and the name (u16 length + bytes). Integers and floats use the
// byte order selected by the header flags.
package snapshot
