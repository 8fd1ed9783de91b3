/*
Package cur reads and writes Windows static cursor (.cur) files.

A cursor file is a 6-byte directory header, one 16-byte entry per frame and
the frame payloads, each addressed by an absolute offset:

	Offset    Size  Field
	0         2     reserved (0)
	2         2     resource type (2 = cursor)
	4         2     frame count N
	6 + 16i   16    entry i: width, height, 0, 0, hotspot x, hotspot y, size, offset
	...             payloads

Width and height are 1..256; 256 is stored as the byte 0.

# Encoding

	f := cur.New(
	    cur.Frame{Width: 32, Height: 32, HotspotX: 0, HotspotY: 0, Data: small},
	    cur.Frame{Width: 256, Height: 256, HotspotX: 128, HotspotY: 128, Data: large},
	)
	if err := f.WriteFile("pointer.cur"); err != nil {
	    log.Fatal(err)
	}

# Decoding

Decode reads every directory entry before any payload and then seeks to each
payload independently, so files whose payloads are out of order, overlap or
leave gaps decode correctly.

	f, err := cur.Open("pointer.cur")
	if errors.Is(err, types.ErrNotCursor) {
	    // an icon or something else entirely
	}

Payload bytes are opaque: usually a BMP/DIB or PNG image produced by an
image codec such as package iconres.
*/
package cur
