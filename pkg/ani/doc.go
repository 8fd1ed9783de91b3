/*
Package ani reads and writes Windows animated cursor (.ani) files.

An animated cursor is a RIFF container of form type "ACON":

	"RIFF" size "ACON"
	    "anih" 36  frame count, step count, width, height, bit count,
	               planes, default rate, flags
	    "seq " 4*S step -> frame index           (only when not 0..N-1)
	    "rate" 4*S jiffies per step              (only when present)
	    "LIST" size "INFO" "INAM"/"IART" ...     (only when Info is set)
	    "LIST" size "fram"
	        "icon" size <cursor resource> [pad]
	        ...

Every chunk with an odd body length is followed by one zero byte that is
counted by the enclosing container but not by the chunk itself.

A frame is a unique image; a step is a position on the timeline that
points at a frame through the sequence, so steps may repeat or reorder
frames. Durations are in jiffies (1/60 s).

# Encoding

Encode patches the LIST and RIFF sizes after the fact, so it needs an
io.WriteSeeker. MarshalBinary and WriteFile buffer in memory for callers
that only have a plain writer.

	f := ani.New(frames).WithSequence([]uint32{0, 1, 2, 1})
	if err := f.WriteFile("busy.ani"); err != nil {
	    log.Fatal(err)
	}

# Decoding

Decode fails fast on a missing "RIFF" or "ACON" marker and skips every
chunk or LIST type it does not know. Running out of input at a chunk
boundary ends the file; running out inside a chunk body is an error.
Each frame's size and hotspot come from the directory entry of its
embedded resource (see ParseCursorData).
*/
package ani
