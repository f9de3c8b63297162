package main

import (
	"fmt"
	"io"

	"github.com/naay-lang/naay"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scott-cotton/cli"
)

// DiffConfig is the "diff" subcommand's options.
type DiffConfig struct {
	*MainConfig
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two file arguments", cli.ErrUsage)
	}
	fromVal, err := loadPlain(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	toVal, err := loadPlain(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	dmp := diffpatch.New()
	return diffValue(dmp, fromVal, toVal, cc.Out, "$")
}

func loadPlain(arg string) (naay.Value, error) {
	text, err := readInput(arg)
	if err != nil {
		return nil, err
	}
	tree, err := naay.Loads(text)
	if err != nil {
		return nil, err
	}
	return naay.Plain(tree)
}

// diffValue dispatches a structural diff by value shape: mappings
// diff by key (libdiff's rune-remap-the-field-names technique, applied
// to key names instead of ir.Node field tags), sequences diff by
// element content, and scalars diff character by character.
func diffValue(dmp *diffpatch.DiffMatchPatch, from, to naay.Value, w io.Writer, path string) error {
	fromMap, fromIsMap := from.(*naay.Map)
	toMap, toIsMap := to.(*naay.Map)
	if fromIsMap && toIsMap {
		return diffMaps(dmp, fromMap, toMap, w, path)
	}
	fromSeq, fromIsSeq := from.([]naay.Value)
	toSeq, toIsSeq := to.([]naay.Value)
	if fromIsSeq && toIsSeq {
		return diffSeqs(dmp, fromSeq, toSeq, w, path)
	}
	fromStr, fromIsStr := from.(string)
	toStr, toIsStr := to.(string)
	if fromIsStr && toIsStr {
		if fromStr == toStr {
			return nil
		}
		fmt.Fprintf(w, "~ %s\n%s\n", path, dmp.DiffPrettyText(dmp.DiffMain(fromStr, toStr, false)))
		return nil
	}

	fd, _ := marshalOrderedJSON(from)
	td, _ := marshalOrderedJSON(to)
	if string(fd) == string(td) {
		return nil
	}
	fmt.Fprintf(w, "~ %s (value shape changed)\n%s\n", path, dmp.DiffPrettyText(dmp.DiffMain(string(fd), string(td), false)))
	return nil
}

// diffMaps assigns each distinct key name a private-use rune, runs a
// sequence diff over the from/to key orderings to classify removed,
// added, and common keys, then recurses into the common ones.
func diffMaps(dmp *diffpatch.DiffMatchPatch, from, to *naay.Map, w io.Writer, path string) error {
	runeOf := map[string]rune{}
	keyOf := map[rune]string{}
	next := rune(0xe000)
	assign := func(k string) rune {
		if r, ok := runeOf[k]; ok {
			return r
		}
		r := next
		next++
		runeOf[k] = r
		keyOf[r] = k
		return r
	}

	fromKeys, toKeys := from.Keys(), to.Keys()
	fromRunes := make([]rune, len(fromKeys))
	for i, k := range fromKeys {
		fromRunes[i] = assign(k)
	}
	toRunes := make([]rune, len(toKeys))
	for i, k := range toKeys {
		toRunes[i] = assign(k)
	}

	for _, d := range dmp.DiffMainRunes(fromRunes, toRunes, false) {
		for _, r := range d.Text {
			k := keyOf[r]
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintf(w, "- %s.%s\n", path, k)
			case diffpatch.DiffInsert:
				fmt.Fprintf(w, "+ %s.%s\n", path, k)
			case diffpatch.DiffEqual:
				fv, _ := from.Get(k)
				tv, _ := to.Get(k)
				if err := diffValue(dmp, fv, tv, w, path+"."+k); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// diffSeqs applies the same rune-remap technique to sequence elements,
// keyed by each element's JSON rendering, so elements are matched by
// content rather than by index. An element that moved relative to the
// others is still reported as a delete+insert pair.
func diffSeqs(dmp *diffpatch.DiffMatchPatch, from, to []naay.Value, w io.Writer, path string) error {
	runeOf := map[string]rune{}
	next := rune(0xe000)
	assign := func(v naay.Value) rune {
		d, _ := marshalOrderedJSON(v)
		key := string(d)
		if r, ok := runeOf[key]; ok {
			return r
		}
		r := next
		next++
		runeOf[key] = r
		return r
	}

	fromRunes := make([]rune, len(from))
	for i, v := range from {
		fromRunes[i] = assign(v)
	}
	toRunes := make([]rune, len(to))
	for i, v := range to {
		toRunes[i] = assign(v)
	}

	fi, ti := 0, 0
	for _, d := range dmp.DiffMainRunes(fromRunes, toRunes, false) {
		for range d.Text {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintf(w, "- %s[%d]\n", path, fi)
				fi++
			case diffpatch.DiffInsert:
				fmt.Fprintf(w, "+ %s[%d]\n", path, ti)
				ti++
			case diffpatch.DiffEqual:
				fi++
				ti++
			}
		}
	}
	return nil
}
