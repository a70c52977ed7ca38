//go:build ignore

// pipeline exercises learn -> suggest -> save -> load across every core
// component (romanizer, dicttrie, fuzzy, context, wordstore) through a
// single engine instance, and writes a structured log of the results.
// Run from the project root:
//
//	go run e2e/pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sapienskid/akshar-ime/engine"
	"github.com/sapienskid/akshar-ime/romanizer"
)

const (
	logPath    = "e2e_pipeline.log"
	stepCount  = 9
	separator  = "=========================================================="
)

type stepResult struct {
	name     string
	passed   bool
	duration time.Duration
	detail   string
}

func pass(name string, start time.Time) stepResult {
	return stepResult{name: name, passed: true, duration: time.Since(start)}
}

func fail(name, detail string, start time.Time) stepResult {
	return stepResult{name: name, passed: false, duration: time.Since(start), detail: detail}
}

func safeRun(name string, fn func() stepResult) (r stepResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// runAllSteps exercises the full learn/suggest/persist lifecycle spec.md
// describes, in dependency order: each step builds on state left by the
// previous one rather than starting a fresh engine.
func runAllSteps() []stepResult {
	e := engine.New(nil)
	dir, err := os.MkdirTemp("", "akshar-ime-e2e-*")
	if err != nil {
		return []stepResult{fail("setup", err.Error(), time.Now())}
	}
	defer os.RemoveAll(dir)
	snapshotPath := filepath.Join(dir, "user_dictionary.bin")

	steps := []func() stepResult{
		func() stepResult { return testRomanizerPrimary() },
		func() stepResult { return testRomanizerVariants() },
		func() stepResult { return testLearnNepal(e) },
		func() stepResult { return testTrieRanking(e) },
		func() stepResult { return testSourcePrecedence(e) },
		func() stepResult { return testFuzzyTypo(e) },
		func() stepResult { return testContextBoost(e) },
		func() stepResult { return testSaveLoadRoundTrip(e, snapshotPath) },
		func() stepResult { return testEmptyInputContract(e) },
	}

	results := make([]stepResult, 0, len(steps))
	for _, step := range steps {
		results = append(results, safeRun("", step))
	}
	return results
}

// --- individual steps, one per spec.md §8 end-to-end scenario ---

func testRomanizerPrimary() stepResult {
	start := time.Now()
	name := "romanizer: literal transliteration table"
	cases := map[string]string{
		"a": "अ", "aa": "आ", "ka": "क", "ki": "कि", "kra": "क्र",
		"ram": "राम", "malaaii": "मलाई", "aamaa": "आमा", "OM": "ॐ",
	}
	for in, want := range cases {
		got := romanizer.TransliteratePrimary(in)
		if got != want {
			return fail(name, fmt.Sprintf("TransliteratePrimary(%q) = %q, want %q", in, got, want), start)
		}
	}
	return pass(name, start)
}

func testRomanizerVariants() stepResult {
	start := time.Now()
	name := "romanizer: variant generation heuristics"
	cands := romanizer.GenerateCandidates("malai")
	if len(cands) == 0 || cands[0] != romanizer.TransliteratePrimary("malai") {
		return fail(name, fmt.Sprintf("GenerateCandidates(malai) = %v, primary missing or not first", cands), start)
	}
	dot := romanizer.GenerateCandidates(".")
	if len(dot) != 1 || dot[0] != "।" {
		return fail(name, fmt.Sprintf("GenerateCandidates(.) = %v, want [।]", dot), start)
	}
	return pass(name, start)
}

func testLearnNepal(e *engine.Engine) stepResult {
	start := time.Now()
	name := "learn+suggest: fresh confirmation surfaces via trie"
	e.Learn("nepal", "नेपाल")
	got := e.Suggest("ne", 3)
	for _, s := range got {
		if s.Devanagari == "नेपाल" {
			return pass(name, start)
		}
	}
	return fail(name, fmt.Sprintf("Suggest(ne, 3) = %+v, missing नेपाल", got), start)
}

func testTrieRanking(e *engine.Engine) stepResult {
	start := time.Now()
	name := "learn+suggest: frequency ranks a repeated word first"
	for range 3 {
		e.Learn("ma", "म")
	}
	e.Learn("malai", "मलाई")
	got := e.Suggest("ma", 5)
	if len(got) == 0 || got[0].Devanagari != "म" {
		return fail(name, fmt.Sprintf("Suggest(ma, 5) = %+v, want म first", got), start)
	}
	return pass(name, start)
}

func testSourcePrecedence(e *engine.Engine) stepResult {
	start := time.Now()
	name := "engine: trie source outranks primary literal at equal devanagari"
	got := e.Suggest("ma", 5)
	var trieScore, found uint64
	for _, s := range got {
		if s.Devanagari == "म" {
			trieScore = s.Score
			found = 1
		}
	}
	if found == 0 {
		return fail(name, "म missing from Suggest(ma, 5)", start)
	}
	if trieScore < engine.PrimaryLiteralScore {
		return fail(name, fmt.Sprintf("म scored %d, expected trie precedence over literal score %d", trieScore, engine.PrimaryLiteralScore), start)
	}
	return pass(name, start)
}

func testFuzzyTypo(e *engine.Engine) stepResult {
	start := time.Now()
	name := "learn+fuzzy: one-deletion typo still surfaces the word"
	e.Learn("namaste", "नमस्ते")
	got := e.Suggest("nmaste", 5)
	for _, s := range got {
		if s.Devanagari == "नमस्ते" {
			return pass(name, start)
		}
	}
	return fail(name, fmt.Sprintf("Suggest(nmaste, 5) = %+v, missing नमस्ते", got), start)
}

func testContextBoost(e *engine.Engine) stepResult {
	start := time.Now()
	name := "learn+context: second bigram occurrence boosts score"
	// The context model boosts by the bigram (last confirmed word, candidate),
	// so राम is confirmed last before each query.
	e.Learn("ram", "राम")
	e.Learn("sita", "सीता")
	e.Learn("ram", "राम")
	before := scoreOf(e.Suggest("si", 5), "सीता") // trie freq 1, boost 0
	e.Learn("sita", "सीता")
	e.Learn("ram", "राम")
	after := scoreOf(e.Suggest("si", 5), "सीता") // trie freq 2, boost 10
	if after < before+10 {
		return fail(name, fmt.Sprintf("second-occurrence score %d is not at least 10 above first-occurrence score %d", after, before), start)
	}
	return pass(name, start)
}

func scoreOf(suggestions []engine.Suggestion, devanagari string) uint64 {
	for _, s := range suggestions {
		if s.Devanagari == devanagari {
			return s.Score
		}
	}
	return 0
}

func testSaveLoadRoundTrip(e *engine.Engine, path string) stepResult {
	start := time.Now()
	name := "persistence: save then load reproduces suggestions"

	e2 := engine.Open(path, nil)
	e2.Learn("nepal", "नेपाल")
	e2.Learn("ma", "म")
	e2.Learn("ma", "म")
	e2.Learn("ma", "म")
	e2.Learn("malai", "मलाई")
	if err := e2.Save(); err != nil {
		return fail(name, fmt.Sprintf("Save: %v", err), start)
	}
	before := e2.Suggest("ma", 5)

	loaded := engine.Open(path, nil)
	after := loaded.Suggest("ma", 5)

	if len(before) == 0 || len(after) == 0 {
		return fail(name, "empty suggestion list before or after round trip", start)
	}
	if before[0].Devanagari != after[0].Devanagari {
		return fail(name, fmt.Sprintf("top suggestion changed across round trip: %q vs %q", before[0].Devanagari, after[0].Devanagari), start)
	}
	return pass(name, start)
}

func testEmptyInputContract(e *engine.Engine) stepResult {
	start := time.Now()
	name := "engine: empty prefix and empty confirm args are no-ops"
	if got := e.Suggest("", 5); got != nil {
		return fail(name, fmt.Sprintf("Suggest(\"\", 5) = %v, want nil", got), start)
	}
	before := e.Suggest("ma", 5)
	e.Learn("", "म")
	e.Learn("ma", "")
	after := e.Suggest("ma", 5)
	if len(before) != len(after) {
		return fail(name, "empty-argument Learn call mutated state", start)
	}
	return pass(name, start)
}

func writeLog(path string, results []stepResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  akshar-ime E2E Pipeline")
	fmt.Fprintf(bw, "  Timestamp: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(bw, "  Go: %s  OS: %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(bw, "  Steps: %d\n", stepCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	for _, r := range results {
		status := "OK"
		if !r.passed {
			status = "FAIL"
		}
		fmt.Fprintf(bw, "[%s] %s (%s)\n", status, r.name, r.duration.Round(time.Microsecond))
		if !r.passed {
			fmt.Fprintf(bw, "    %s\n", r.detail)
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d steps)", stepCount)
	totalStart := time.Now()

	results := runAllSteps()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	passed, failed := 0, 0
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
			log.Printf("  FAIL %s: %s", r.name, r.detail)
		}
	}
	log.Printf("%d steps | %d passed | %d failed", len(results), passed, failed)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	if failed > 0 {
		os.Exit(1)
	}
}
