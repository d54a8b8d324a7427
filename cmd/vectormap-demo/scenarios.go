package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/amp-labs/vectormap/assert"
	"github.com/amp-labs/vectormap/errors"
	"github.com/amp-labs/vectormap/maps"
)

type scenarioFunc func(out io.Writer, log *slog.Logger) error

var errUnknownScenario = stderrors.New("unknown scenario")

// scenarios returns every scenario in the order "all" runs them.
func scenarios() *maps.VectorMap[string, scenarioFunc] {
	registry := maps.New[string, scenarioFunc](maps.WithCapacity(4))
	registry.Insert("ints", intKeys)
	registry.Insert("strings", stringKeys)
	registry.Insert("bools", boolKeys)
	registry.Insert("intkey", intKeyQueries)

	return registry
}

func runScenarios(out io.Writer, log *slog.Logger, name string) error {
	registry := scenarios()

	if name != "all" {
		fn, err := registry.Get(name)
		if err != nil {
			return fmt.Errorf("%w %q (have %v)", errUnknownScenario, name, registry.Keys())
		}

		return runOne(out, log, name, fn)
	}

	first := true

	for scenarioName, fn := range registry.Seq() {
		if !first {
			fprintln(out, "==============================")
		}

		first = false

		if err := runOne(out, log, scenarioName, fn); err != nil {
			return err
		}
	}

	return nil
}

func runOne(out io.Writer, log *slog.Logger, name string, fn scenarioFunc) error {
	log = log.With("scenario", name)
	log.Debug("scenario started")

	if err := fn(out, log); err != nil {
		log.Error("scenario failed", "error", err)

		return fmt.Errorf("scenario %s: %w", name, err)
	}

	log.Debug("scenario finished")

	return nil
}

func printMap[K any, V any](out io.Writer, m *maps.VectorMap[K, V], format func(V) string) {
	keys, values := m.Keys(), m.Values()
	assert.SameLen(keys, values)

	for i := range keys {
		fprintf(out, "key: %v value: %s\n", keys[i], format(values[i]))
	}
}

func identity(s string) string {
	return s
}

func intKeys(out io.Writer, log *slog.Logger) error {
	letters := maps.New[uint, rune]()

	for i, val := uint(0), 'a'; i < 4; i, val = i+1, val+1 {
		key, inserted := letters.Insert(i, val)
		if inserted {
			fprintf(out, "Value %s inserted into map with key: %d\n", strconv.QuoteRune(val), key)
		} else {
			fprintf(out, "Value %s not inserted (existed before) with key: %d\n", strconv.QuoteRune(val), key)
		}
	}

	printMap(out, letters, strconv.QuoteRune)

	key, inserted := letters.Insert(3, 'd')
	fprintf(out, "Tried to insert again with key: %d -> insertion result: %t\n", key, inserted)
	printMap(out, letters, strconv.QuoteRune)

	for _, k := range []uint{1, 3, 5} {
		fprintf(out, "Checking GetOrInsertDefault. Key: %d value: %s\n",
			k, strconv.QuoteRune(*letters.GetOrInsertDefault(k)))
	}

	var failures errors.Collection

	for _, k := range []uint{1, 3, 7} {
		val, err := letters.Get(k)
		if err != nil {
			failures.Add(err)
			fprintln(out, err)
			log.Debug("lookup failed", "key", k, "error", err)

			continue
		}

		fprintf(out, "Checking Get. Key: %d value: %s\n", k, strconv.QuoteRune(val))
	}

	printMap(out, letters, strconv.QuoteRune)

	log.Info("int keys done", "entries", letters.Len(), "failed_lookups", failures.Len())

	return nil
}

func stringKeys(out io.Writer, log *slog.Logger) error {
	names := maps.New[string, string]()

	*names.GetOrInsertDefault("Tim") = "Mayers"
	*names.GetOrInsertDefault("John") = "Smith"
	printMap(out, names, identity)

	fprintln(out, *names.GetOrInsertDefault("Tim"))

	john, err := names.At("John")
	if err != nil {
		return err
	}

	*john = "Changed name!"
	printMap(out, names, identity)

	log.Info("string keys done", "entries", names.Len())

	return nil
}

func boolKeys(out io.Writer, log *slog.Logger) error {
	fprintln(out, "Checking BoolMap[string].Insert()")

	answers := maps.NewBoolMap[string]()
	for _, example := range []maps.KeyValuePair[bool, string]{
		{Key: true, Value: "yes"},
		{Key: false, Value: "no"},
		{Key: true, Value: "tak"},
		{Key: false, Value: "nie"},
	} {
		_, inserted := answers.Insert(example.Key, example.Value)

		result := "not inserted"
		if inserted {
			result = "inserted"
		}

		fprintf(out, "for: %t, %q --> %s\n", example.Key, example.Value, result)
	}

	fprintf(out, "value for true is: %s\n", *answers.GetOrInsertDefault(true))
	fprintf(out, "value for false is: %s\n", *answers.GetOrInsertDefault(false))

	weekendsAre := maps.NewBoolMap[string]()
	*weekendsAre.GetOrInsertDefault(true) = "they are cool and always awaited"
	*weekendsAre.GetOrInsertDefault(false) = "long enough :("
	fprintf(out, "The truth about weekends is that: %s\n", *weekendsAre.GetOrInsertDefault(true))
	fprintf(out, "And they are definitely not %s\n", *weekendsAre.GetOrInsertDefault(false))

	fprintln(out, "Checking At() on empty BoolMap[rune]")

	var (
		empty    maps.BoolMap[rune]
		failures errors.Collection
	)

	for _, key := range []bool{true, false} {
		_, err := empty.At(key)
		failures.Add(err)
		fprintln(out, err)
	}

	if failures.Len() != 2 {
		return fmt.Errorf("expected both lookups on an empty map to fail, got %d failures", failures.Len())
	}

	log.Debug("expected lookup failures", "error", failures.GetError())

	otherWay := maps.NewBoolMap[string]()
	*otherWay.GetOrInsertDefault(true) = "yes, of course, naturally..."
	*otherWay.GetOrInsertDefault(false) = "no, no way, impossible"

	for _, key := range []bool{true, false} {
		val, err := otherWay.Get(key)
		if err != nil {
			return err
		}

		fprintf(out, "%t said in another way: %s\n", key, val)
	}

	fprintln(out, "Checking change of stored values with At()")

	for _, translation := range []maps.KeyValuePair[bool, string]{
		{Key: true, Value: "prawda"},
		{Key: false, Value: "nieprawda"},
	} {
		ptr, err := otherWay.At(translation.Key)
		if err != nil {
			return err
		}

		*ptr = translation.Value
	}

	fprintf(out, "'true' in polish: %s\n", otherWay.TryGet(true).GetOrElse("?"))
	fprintf(out, "'false' in polish without polish letters ;): %s\n", otherWay.TryGet(false).GetOrElse("?"))

	fprintln(out, "Checking a stored zero value")

	lossy := maps.NewBoolMap[int]()
	tracked := maps.NewTrackedBoolMap[int]()
	lossy.Insert(true, 0)
	tracked.Insert(true, 0)
	fprintf(out, "BoolMap: %s, TrackedBoolMap: %s\n", lossy.Find(true), tracked.Find(true))

	log.Info("bool keys done")

	return nil
}

func intKeyQueries(out io.Writer, _ *slog.Logger) error {
	fprintf(out, "VectorMap[uint, rune].IsIntKey(): %t\n", maps.New[uint, rune]().IsIntKey())
	fprintf(out, "VectorMap[string, string].IsIntKey(): %t\n", maps.New[string, string]().IsIntKey())
	fprintf(out, "VectorMap[int, string].IsIntKey(): %t\n", maps.New[int, string]().IsIntKey())
	fprintf(out, "BoolMap[float64].IsIntKey(): %t\n", maps.NewBoolMap[float64]().IsIntKey())
	fprintf(out, "maps.IsIntKey[int](): %t\n", maps.IsIntKey[int]())
	fprintf(out, "maps.IsIntKey[float64](): %t\n", maps.IsIntKey[float64]())

	return nil
}
