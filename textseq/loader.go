package textseq

import (
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/seqs"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment is one loaded piece of a text file.
type Fragment struct {
	Pos  int64 // start position of this fragment within the file
	Text string
}

// textFile represents an OS file which will be loaded as a sequence.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for loaded fragments
}

// Load reads a file, which must be a text file, and loads it as a sequence
// of fragments in file order. Clients may indicate a recommended fragment
// length; a fragSize of 0 lets Load use sensible defaults scaled to the
// file size.
//
// Fragments are read by a background goroutine and broadcast to all
// subscribers of the internal caster, with the returned sequence assembled
// from that same broadcast. The API is synchronous: Load returns after the
// complete file has been read.
func Load(name string, fragSize int64) (seqs.Seq[Fragment], error) {
	tf, err := openFile(name)
	if err != nil {
		return seqs.Seq[Fragment]{}, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		switch {
		case size < 64:
			fragSize = size
		case size < 1024:
			fragSize = 64
		case size < tenKb:
			fragSize = 256
		case size < hundredKb:
			fragSize = 512
		case size < oneMb:
			fragSize = twoKb
		default:
			fragSize = sixKb
		}
	}
	if size == 0 {
		return seqs.Seq[Fragment]{}, nil
	}
	return loadAllFragments(tf, fragSize)
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast fragments as they load
	}, nil
}

// loadAllFragments reads the file fragment-wise in a background goroutine,
// broadcasting every loaded fragment, and assembles the sequence from the
// broadcast channel.
func loadAllFragments(tf *textFile, fragSize int64) (seqs.Seq[Fragment], error) {
	sub, ok := tf.cast.Sub(nil, 32)
	if !ok {
		return seqs.Seq[Fragment]{}, fmt.Errorf("cannot subscribe to fragment broadcast")
	}
	var lasterr error
	go func() {
		defer tf.cast.Close()
		size := tf.info.Size()
		for pos := int64(0); pos < size; pos += fragSize {
			n := fragSize
			if size-pos < n {
				n = size - pos
			}
			buf := make([]byte, n)
			cnt, err := tf.file.ReadAt(buf, pos)
			if err != nil && err != io.EOF {
				lasterr = fmt.Errorf("error loading text fragment: %w", err)
				return
			} else if int64(cnt) < n {
				lasterr = fmt.Errorf("not all bytes loaded for text fragment")
				return
			}
			tracer().Debugf("loaded fragment @ %d, %d bytes", pos, cnt)
			tf.cast.Pub(Fragment{Pos: pos, Text: string(buf)})
		}
	}()
	out := seqs.Seq[Fragment]{}
	for m := range sub {
		out = out.Append(m.(Fragment))
	}
	// the caster is closed, so the loader goroutine is done and lasterr final
	if lasterr != nil {
		return seqs.Seq[Fragment]{}, lasterr
	}
	return out, nil
}
