/*
 * spf.go, part of gbsa.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package spf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gbsa "github.com/ghorbanimahdi73/openmm"
	"github.com/klauspost/compress/zstd"
)

const (
	lzwLitwidth int = 8
)

//This will cause additional indirections
//but each file is written/read once, so those delays are irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

func newWriterFunc(name string, level int) func(io.Writer) (io.WriteCloser, error) {
	zwriter := func(a io.Writer) (io.WriteCloser, error) {
		r, err := flate.NewWriter(a, level)
		return r, err
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		return func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		return gzipwriter
	case 'r':
		return zwriter
	case 'f', 's':
		return zstdwriter
	default:
		return zstdwriter
	}
}

func newReaderFunc(name string) func(io.Reader) (io.ReadCloser, error) {
	zreader := func(a io.Reader) (io.ReadCloser, error) {
		r := flate.NewReader(a)
		return r, nil
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		return func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		return gzreader
	case 'r':
		return zreader
	case 'f', 's':
		return zstdreader
	default:
		return zstdreader
	}
}

//g formats a float in full precision, so parameters round-trip exactly.
func g(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

//Write writes the full state of p (scalars, flags, scaling policy and the
//four per-atom arrays) to the file name, compressed with the codec the
//filename's last letter selects. Only the first header map is written, as
//key=value lines. An optional compression level applies to the gzip and
//flate codecs.
func Write(name string, p *gbsa.GBVISoftcore, header map[string]string, compressionLevel ...int) error {
	var level int = 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	h, err := newWriterFunc(name, level)(f)
	if err != nil {
		return Error{"Can't set up the compressor " + err.Error(), name, []string{"Write"}, true}
	}
	if header != nil {
		headerstr := ""
		for k, v := range header {
			headerstr += fmt.Sprintf("%s=%v\n", k, v)
		}
		h.Write([]byte(headerstr))
	}
	n := p.NumberOfAtoms()
	h.Write([]byte(fmt.Sprintf("** %d\n", n)))
	h.Write([]byte(fmt.Sprintf("@ %s %s %s %s\n", g(p.SoluteDielectric()), g(p.SolventDielectric()), g(p.ProbeRadius()), g(p.ElectricConstant()))))
	h.Write([]byte(fmt.Sprintf("%% %d %s\n", b2i(p.UseCutoff()), g(p.CutoffDistance()))))
	box := p.PeriodicBox()
	h.Write([]byte(fmt.Sprintf("$ %d %s %s %s\n", b2i(p.Periodic()), g(box[0]), g(box[1]), g(box[2]))))
	h.Write([]byte(fmt.Sprintf("! %d %s %s\n", int(p.ScalingMethod()), g(p.QuinticLowerLimitFactor()), g(p.QuinticUpperBornRadiusLimit()))))
	radii := p.AtomicRadii()
	scaled := p.ScaledRadii()
	gamma := p.GammaParameters()
	bscale := p.BornRadiusScaleFactors()
	for i := 0; i < n; i++ {
		_, err = h.Write([]byte(fmt.Sprintf("%s %s %s %s\n", g(radii[i]), g(scaled[i]), g(gamma[i]), g(bscale[i]))))
		if err != nil {
			return Error{err.Error(), name, []string{"Write"}, true}
		}
	}
	h.Write([]byte("*\n"))
	if err := h.Close(); err != nil {
		return Error{"Can't flush the compressed stream " + err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

//fields splits a record line and checks the leading mark and field count.
func fields(line, mark, name string, want int) ([]string, error) {
	f := strings.Fields(strings.TrimSuffix(line, "\n"))
	if len(f) != want+1 || f[0] != mark {
		return nil, Error{fmt.Sprintf("%s: malformed '%s' record: %q", WrongFormat, mark, line), name, []string{"Read"}, true}
	}
	return f[1:], nil
}

func parseFloats(strs []string, name string) ([]float64, error) {
	ret := make([]float64, len(strs))
	var err error
	for i, v := range strs {
		ret[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("Can't parse number %q: %s", v, err.Error()), name, []string{"Read"}, true}
		}
	}
	return ret, nil
}

//Read reads back a parameter file written by Write, returning a store
//whose four per-atom arrays are all owned, plus the user header map (nil
//if the file carries none). A file whose records violate the configuration
//invariants (a periodic flag without a cutoff, a box smaller than twice
//the cutoff, a non-positive atom count) is a data error, reported as an
//*spf.Error*, never a panic: the reader validates before it configures the
//store.
func Read(name string) (*gbsa.GBVISoftcore, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	zr, err := newReaderFunc(name)(bufio.NewReader(f))
	if err != nil {
		return nil, nil, Error{"Can't set up the decompressor " + err.Error(), name, []string{"Read"}, true}
	}
	defer zr.Close()
	h := bufio.NewReader(zr)
	var m map[string]string
	natoms := -1
	for {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header " + err.Error(), name, []string{"Read"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from %q", str), name, []string{"Read"}, true}
			}
			natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from %q: %s", nat[1], err.Error()), name, []string{"Read"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{fmt.Sprintf("%s: malformed header line %q", WrongFormat, str), name, []string{"Read"}, true}
		}
		if m == nil {
			m = map[string]string{}
		}
		m[kv[0]] = kv[1]
	}
	if natoms <= 0 {
		return nil, nil, Error{fmt.Sprintf("Non-positive atom count %d", natoms), name, []string{"Read"}, true}
	}
	records := make(map[byte][]float64)
	for _, mark := range []struct {
		m string
		n int
	}{{"@", 4}, {"%", 2}, {"$", 4}, {"!", 3}} {
		line, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read the '" + mark.m + "' record " + err.Error(), name, []string{"Read"}, true}
		}
		strs, err := fields(line, mark.m, name, mark.n)
		if err != nil {
			return nil, nil, err
		}
		vals, err := parseFloats(strs, name)
		if err != nil {
			return nil, nil, err
		}
		records[mark.m[0]] = vals
	}
	//Validation happens here, before the store is touched, so bad data
	//can never reach the panicking configuration entry points.
	diel := records['@']
	cut := records['%']
	per := records['$']
	pol := records['!']
	cutoff := cut[0] != 0
	periodic := per[0] != 0
	if periodic && !cutoff {
		return nil, nil, Error{"Periodic boundary conditions recorded without a cutoff", name, []string{"Read"}, true}
	}
	if periodic {
		for _, v := range per[1:] {
			if v < 2*cut[1] {
				return nil, nil, Error{fmt.Sprintf("Periodic box dimension %g smaller than twice the cutoff %g", v, cut[1]), name, []string{"Read"}, true}
			}
		}
	}
	method := int(pol[0])
	if float64(method) != pol[0] || method < int(gbsa.NoScaling) || method > int(gbsa.QuinticSpline) {
		return nil, nil, Error{fmt.Sprintf("Unknown Born-radius scaling method %g", pol[0]), name, []string{"Read"}, true}
	}
	radii := make([]float64, natoms)
	scaled := make([]float64, natoms)
	gamma := make([]float64, natoms)
	bscale := make([]float64, natoms)
	for i := 0; i < natoms; i++ {
		line, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("Can't read atom %d: %s", i, err.Error()), name, []string{"Read"}, true}
		}
		strs := strings.Fields(strings.TrimSuffix(line, "\n"))
		if len(strs) != 4 {
			return nil, nil, Error{fmt.Sprintf("%s: atom line %d has %d fields: %q", WrongFormat, i, len(strs), line), name, []string{"Read"}, true}
		}
		vals, err := parseFloats(strs, name)
		if err != nil {
			return nil, nil, err
		}
		radii[i], scaled[i], gamma[i], bscale[i] = vals[0], vals[1], vals[2], vals[3]
	}
	term, err := h.ReadString('\n')
	if err != nil || !strings.HasPrefix(term, "*") {
		return nil, nil, Error{"Missing terminator mark", name, []string{"Read"}, true}
	}
	p := gbsa.NewGBVISoftcore(natoms)
	p.SetSoluteDielectric(diel[0])
	p.SetSolventDielectric(diel[1])
	p.SetProbeRadius(diel[2])
	p.SetElectricConstant(diel[3])
	if cutoff {
		p.SetUseCutoff(cut[1])
	}
	if periodic {
		p.SetPeriodic([3]float64{per[1], per[2], per[3]})
	}
	p.SetScalingMethod(gbsa.BornRadiusScalingMethod(method))
	p.SetQuinticLowerLimitFactor(pol[1])
	p.SetQuinticUpperBornRadiusLimit(pol[2])
	for _, set := range []struct {
		f func([]float64) error
		v []float64
	}{{p.SetAtomicRadii, radii}, {p.SetScaledRadii, scaled}, {p.SetGammaParameters, gamma}, {p.SetBornRadiusScaleFactors, bscale}} {
		if err := set.f(set.v); err != nil {
			return nil, nil, errDecorate(Error{err.Error(), name, nil, true}, "Read")
		}
	}
	return p, m, nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements gbsa.Error and decorates the error with the caller's name before returning it.
//if used with a non-gbsa.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(gbsa.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for solvent-parameter-file errors. It fulfills gbsa.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("spf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing read or write was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "spf") associated to the error
func (err Error) Format() string { return "spf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the SPF file"
)
