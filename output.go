/*
 * output.go, part of raspa-ase.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

//This file reads the .data report files that RASPA leaves under
//Output/System_N. The format has no grammar: sections are fenced by runs of
//"=", decorated with runs of "-" and "+", and each statistics line has to be
//recognized by its content. The line rules here target the report dialect of
//RASPA 2.x and are ordered; the first match wins, and several patterns
//overlap on purpose, so do not reorder them.

package raspa

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var (
	ruleLine  = regexp.MustCompile(`-{3,}|\+{3,}`)
	delimLine = regexp.MustCompile(`={3,}`)
	bracketed = regexp.MustCompile(`\[([^\[\]]+)\]`)
	twoSpaces = regexp.MustCompile(`\s{2,}`)
	noteSplit = regexp.MustCompile(`:|\s{2,}`)
)

// RASPA prints a line of "=" right after its exclusion-constraints energy
// report that does not open a section. A quirk of the dialect; do not
// generalize it.
const delimException = "Exclusion constraints energy"

// Marker of the statistics whose value lines come split in two consecutive
// line pairs and have to be stitched back together before parsing.
const splitStatMark = "absolute adsorption:"

// Lines carrying any of these are lifecycle banners or stray fence remnants,
// not data.
var ignoreMarks = []string{"Simulation started", "Simulation finished", "====="}

// Coerce converts a token to a float Value if it parses as one and keeps it
// as a trimmed string otherwise. The conversion is per-token and never
// fails; non-numeric tokens are data too.
func Coerce(tok string) Value {
	tok = strings.TrimSpace(tok)
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Num(f)
	}
	return Str(tok)
}

func coerceFields(line string) []Value {
	fields := strings.Fields(line)
	vals := make([]Value, len(fields))
	for i, f := range fields {
		vals[i] = Coerce(f)
	}
	return vals
}

// OutputParser reads RASPA .data report text into nested Params. A parse
// never fails; lines the heuristics cannot place are recorded as warnings
// and the rest of the report is still returned.
type OutputParser struct {
	warnings []string
}

func NewOutputParser() *OutputParser {
	return &OutputParser{}
}

// Warnings returns the diagnostics accumulated since the last ClearWarnings,
// such as duplicate section titles and lines that yielded no tokens.
func (O *OutputParser) Warnings() []string {
	return O.warnings
}

func (O *OutputParser) ClearWarnings() {
	O.warnings = nil
}

func (O *OutputParser) warn(format string, args ...interface{}) {
	O.warnings = append(O.warnings, fmt.Sprintf(format, args...))
}

// Parse splits the raw report into sections and parses each one. The result
// maps section titles to nested mappings of extracted fields. Text with no
// "="-fenced sections yields an empty mapping. When a title repeats, the
// last occurrence wins, which mirrors how RASPA overwrites its own reports;
// each overwrite is reported as a warning.
func (O *OutputParser) Parse(raw string) *Params {
	ret := NewParams()
	for _, sec := range O.splitSections(raw) {
		if _, ok := ret.Get(sec.title); ok {
			O.warn("duplicate section %q: keeping the last occurrence", sec.title)
		}
		ret.Set(sec.title, Map(O.parseSection(sec.title, sec.lines)))
	}
	return ret
}

// ParseFile parses a .data file. Files ending in .gz are decompressed on
// the fly.
func (O *OutputParser) ParseFile(filename string) (*Params, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, CError{err.Error(), []string{"ParseFile"}}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, CError{err.Error(), []string{"ParseFile"}}
		}
		defer gz.Close()
		r = gz
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, CError{err.Error(), []string{"ParseFile"}}
	}
	return O.Parse(string(raw)), nil
}

type section struct {
	title string
	lines []string
}

// splitSections drops blank and decorative lines, stitches the split
// "absolute adsorption" statistics, and cuts the text into titled sections.
// A section opens at each "=" fence; its title is the line right before the
// fence (trailing ":" trimmed) and its content runs to the next fence,
// except for the last content line, which is the next section's title.
func (O *OutputParser) splitSections(raw string) []section {
	all := strings.Split(raw, "\n")
	lines := make([]string, 0, len(all))
	for _, l := range all {
		if strings.TrimSpace(l) == "" || ruleLine.MatchString(l) {
			continue
		}
		lines = append(lines, l)
	}
	mergeSplitStats(lines)
	var delims []int
	for i, l := range lines {
		if !delimLine.MatchString(l) {
			continue
		}
		if i > 0 && strings.Contains(lines[i-1], delimException) {
			continue
		}
		delims = append(delims, i)
	}
	var secs []section
	for k := 0; k+1 < len(delims); k++ {
		n := delims[k]
		if n == 0 {
			continue //fence on the very first line, nothing to title it
		}
		title := strings.TrimSuffix(strings.TrimSpace(lines[n-1]), ":")
		end := delims[k+1] - 1
		if end < n+1 {
			end = n + 1
		}
		secs = append(secs, section{title: title, lines: lines[n+1 : end]})
	}
	return secs
}

// mergeSplitStats rejoins the statistics split over two consecutive line
// pairs: line i gets line i+2 appended, line i+1 gets line i+3, and the two
// donor slots are blanked so they are not parsed as entries of their own.
func mergeSplitStats(lines []string) {
	for i := 0; i+3 < len(lines); i++ {
		if !strings.Contains(lines[i], splitStatMark) {
			continue
		}
		first := lines[i] + lines[i+2]
		second := lines[i+1] + lines[i+3]
		lines[i] = first
		lines[i+2] = second
		lines[i+1] = " "
		lines[i+3] = " "
	}
}

//Title predicates for the line rules.

func boxLengthsTitle(title string) bool {
	return strings.Contains(strings.ToLower(title), "box-lengths")
}

func desorptionTitle(title string) bool {
	return strings.Contains(strings.ToLower(title), "desorption")
}

func hostGuestTitle(title string) bool {
	return strings.Contains(title, "Host-") || strings.Contains(title, "-Cation") ||
		strings.Contains(title, "Adsorbate-Adsorbate")
}

// sectionCtx is the running state of one section parse: the fields built so
// far, the species sub-mapping currently open in a molecule-count section,
// and the note counter of a desorption section. It is discarded when the
// section ends.
type sectionCtx struct {
	parser  *OutputParser
	title   string
	fields  *Params
	species *Params
	notes   int
}

// A lineRule pairs a content predicate with a handler. Rules are tried in
// order and only the first match runs.
type lineRule struct {
	match func(c *sectionCtx, line string) bool
	apply func(c *sectionCtx, line string)
}

var sectionRules = []lineRule{
	{matchIgnored, applyIgnored},
	{matchBlockStat, applyBlockStat},
	{matchAverage, applyAverage},
	{matchBoxLengths, applyBoxLengths},
	{matchDesorption, applyDesorption},
	{matchHostGuest, applyHostGuest},
	{matchMoleculeCount, applyMoleculeCount},
	{matchWidomHenry, applyWidomHenry},
	{matchAny, applyFallback},
}

func (O *OutputParser) parseSection(title string, lines []string) *Params {
	c := &sectionCtx{parser: O, title: title, fields: NewParams()}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue //blanked donor slots from mergeSplitStats, mostly
		}
		for _, rule := range sectionRules {
			if rule.match(c, line) {
				rule.apply(c, line)
				break
			}
		}
	}
	return c.fields
}

//Rule 1: lifecycle banners and fence remnants.

func matchIgnored(c *sectionCtx, line string) bool {
	for _, m := range ignoreMarks {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func applyIgnored(c *sectionCtx, line string) {}

//Rule 2: per-block statistics, key "Block[ N]"-style from the first two
//tokens. Box-lengths sections format their blocks differently and Van der
//Waals lines belong to the host/guest rules.

func matchBlockStat(c *sectionCtx, line string) bool {
	return strings.Contains(line, "Block") && !boxLengthsTitle(c.title) &&
		!strings.Contains(line, "Van der Waals")
}

func applyBlockStat(c *sectionCtx, line string) {
	toks := coerceFields(line)
	if len(toks) < 2 {
		c.parser.warn("section %q: short block line %q", c.title, line)
		return
	}
	key := toks[0].String() + " " + toks[1].String()
	c.fields.Set(key, Seq(toks[2:]...))
}

//Rule 3: average and surface-area statistics. The token count decides the
//exact layout; all variants keep a (value, error, extra) triple.

func matchAverage(c *sectionCtx, line string) bool {
	return (strings.Contains(line, "Average") || strings.Contains(line, "Surface")) &&
		!desorptionTitle(c.title)
}

func applyAverage(c *sectionCtx, line string) {
	toks := coerceFields(line)
	if len(toks) < 2 {
		c.parser.warn("section %q: short average line %q", c.title, line)
		return
	}
	switch {
	case len(toks) == 8:
		t := make([]Value, 0, 6)
		t = append(t, toks[:2]...)
		t = append(t, toks[4:]...)
		c.fields.Set(t[4].String()+" "+t[5].String(), Seq(t[1:4]...))
	case len(toks) == 5:
		c.fields.Set(toks[4].String(), Seq(toks[1:4]...))
	case strings.Contains(toks[0].String(), "Surface"):
		c.fields.Set(toks[len(toks)-1].String(), Seq(clampSlice(toks, 2, 5)...))
	default:
		t := toks
		if len(t) > 2 {
			t = append(append([]Value{}, toks[:2]...), toks[3:]...)
		}
		c.fields.Set(t[len(t)-1].String(), Seq(clampSlice(t, 1, 4)...))
	}
}

//Rule 4: box-lengths sections. The label spans three tokens for angles
//(e.g. "Average alpha angle") and two otherwise.

func matchBoxLengths(c *sectionCtx, line string) bool {
	return boxLengthsTitle(c.title)
}

func applyBoxLengths(c *sectionCtx, line string) {
	toks := coerceFields(line)
	n := 2
	if strings.Contains(line, "angle") {
		n = 3
	}
	if len(toks) <= n {
		c.parser.warn("section %q: short box-lengths line %q", c.title, line)
		return
	}
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = toks[i].String()
	}
	c.fields.Set(strings.Join(labels, " "), Seq(toks[n:]...))
}

//Rule 5: desorption sections. "Note" lines are kept as numbered free text;
//data lines keep their first three values under the trailing label.

func matchDesorption(c *sectionCtx, line string) bool {
	return desorptionTitle(c.title)
}

func applyDesorption(c *sectionCtx, line string) {
	if strings.Contains(line, "Note") {
		segs := splitTrim(noteSplit, line)
		if len(segs) == 0 {
			c.parser.warn("section %q: empty note line %q", c.title, line)
			return
		}
		c.notes++
		key := segs[0] + " " + strconv.Itoa(c.notes)
		c.fields.Set(key, Str(strings.Join(segs[1:], " ")))
		return
	}
	toks := coerceFields(line)
	if len(toks) > 0 && toks[0].String() == "Average" {
		toks = toks[1:]
	}
	if len(toks) == 0 {
		c.parser.warn("section %q: empty desorption line %q", c.title, line)
		return
	}
	c.fields.Set(toks[len(toks)-1].String(), Seq(clampSlice(toks, 0, 3)...))
}

//Rule 6: host-host, host-adsorbate, cation and adsorbate-adsorbate energy
//sections, where Van der Waals and Coulomb contributions ride on the same
//line as colon-delimited segments.

func matchHostGuest(c *sectionCtx, line string) bool {
	return hostGuestTitle(c.title) && !desorptionTitle(c.title)
}

func applyHostGuest(c *sectionCtx, line string) {
	switch {
	case strings.HasPrefix(strings.TrimSpace(line), "Block"):
		sub := NewParams()
		var count int
		for _, seg := range splitTrim(twoSpaces, line) {
			if !strings.Contains(seg, ":") || count >= 2 {
				continue
			}
			parts := strings.SplitN(seg, ":", 2)
			sub.Set(strings.TrimSpace(parts[0]), Coerce(parts[1]))
			count++
		}
		wst := strings.Fields(line)
		if len(wst) < 2 {
			c.parser.warn("section %q: short block line %q", c.title, line)
			return
		}
		lead := Value{}
		for _, w := range wst {
			if v := Coerce(w); v.IsNum() {
				lead = v
				break
			}
		}
		c.fields.Set(wst[0]+" "+wst[1], Seq(lead, Map(sub)))
	case strings.Contains(line, "Average"):
		segs := splitTrim(twoSpaces, line)
		if len(segs) == 0 {
			c.parser.warn("section %q: empty average line %q", c.title, line)
			return
		}
		label := strings.Fields(segs[0])[0]
		for _, seg := range segs[1:] {
			if !strings.Contains(seg, ":") {
				c.fields.Set(label, Coerce(seg))
				break
			}
		}
		for _, seg := range segs {
			if !strings.Contains(seg, ":") {
				continue
			}
			parts := strings.SplitN(seg, ":", 2)
			sub := strings.TrimSpace(parts[0])
			if strings.Contains(sub, "Van der Waals") || strings.Contains(sub, "Coulomb") {
				c.fields.Set("Average "+sub, Coerce(parts[1]))
			}
		}
	default:
		c.fields.Set("standard deviation", Seq(coerceFields(line)...))
	}
}

//Rule 7: "Number of molecules" sections, the one stateful case. A
//"Component" line opens a sub-mapping for the bracketed species name and the
//data lines that follow accumulate into it until the next "Component" line.

func matchMoleculeCount(c *sectionCtx, line string) bool {
	return strings.Contains(c.title, "Number of molecules")
}

func applyMoleculeCount(c *sectionCtx, line string) {
	if strings.Contains(line, "Component") {
		m := bracketed.FindStringSubmatch(line)
		if m == nil {
			c.parser.warn("section %q: component line without species name %q", c.title, line)
			return
		}
		sub := NewParams()
		c.fields.Set(m[1], Map(sub))
		c.species = sub
		return
	}
	t := strings.Fields(line)
	if len(t) == 0 {
		return
	}
	var rest []string
	if len(t)-1 > 12 {
		rest = t[len(t)-12:] //long stat lines keep only the trailing numbers
	} else {
		rest = t[1:]
	}
	vals := make([]Value, len(rest))
	for i, r := range rest {
		vals[i] = Coerce(r)
	}
	target := c.species
	if target == nil {
		target = c.fields //data line before any Component line
	}
	target.Set(t[0], Seq(vals...))
}

//Rule 8: Widom and Henry coefficient summaries.

func matchWidomHenry(c *sectionCtx, line string) bool {
	return strings.Contains(line, "Average Widom") || strings.Contains(line, "Average Henry")
}

func applyWidomHenry(c *sectionCtx, line string) {
	toks := coerceFields(line)
	if len(toks) < 5 {
		c.parser.warn("section %q: short summary line %q", c.title, line)
		return
	}
	key := "Widom"
	if strings.Contains(line, "Average Henry") {
		key = "Henry"
	}
	last := toks[len(toks)-5:]
	c.fields.Set(key, Seq(last[1:]...))
}

//Rule 9: fallback. Splitting on punctuation accepts any line; yielding no
//tokens at all means the report broke a format assumption, which is worth a
//warning but never a crash.

func matchAny(c *sectionCtx, line string) bool {
	return true
}

func applyFallback(c *sectionCtx, line string) {
	segs := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune("()[]:,\t", r)
	})
	toks := make([]Value, 0, len(segs))
	for _, s := range segs {
		if strings.TrimSpace(s) == "" {
			continue
		}
		toks = append(toks, Coerce(s))
	}
	if len(toks) == 0 {
		c.parser.warn("section %q: line yielded no tokens: %q", c.title, line)
		return
	}
	key := toks[0].String()
	switch len(toks) {
	case 1:
		c.fields.Set(key, Seq())
	case 2:
		c.fields.Set(key, toks[1])
	default:
		c.fields.Set(key, Seq(toks[1:]...))
	}
}

//Helpers.

// splitTrim splits on re, trims each segment and drops the empty ones.
func splitTrim(re *regexp.Regexp, s string) []string {
	var ret []string
	for _, seg := range re.Split(s, -1) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			ret = append(ret, seg)
		}
	}
	return ret
}

// clampSlice is toks[lo:hi] with both bounds clamped to the slice.
func clampSlice(toks []Value, lo, hi int) []Value {
	if lo > len(toks) {
		lo = len(toks)
	}
	if hi > len(toks) {
		hi = len(toks)
	}
	return toks[lo:hi]
}
