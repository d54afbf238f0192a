// Package script holds the fragment scripts streamcast can play.
package script

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/papercomputeco/streamcast/pkg/stream"
)

const promptPrefix = "\x1b[32m[CyberBard]$\x1b[0m "

func prompt(cmd string) string {
	return promptPrefix + cmd + "\r\n"
}

func remark(text string) string {
	return promptPrefix + "\x1b[33m# " + text + "\x1b[0m\r\n"
}

// scene feeds fragments to a range loop and stops quietly once the loop
// breaks.
type scene struct {
	yield func(stream.Fragment) bool
	done  bool
}

func (s *scene) send(data string, delay time.Duration) {
	if s.done {
		return
	}
	s.done = !s.yield(stream.Fragment{Data: data, Delay: delay})
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// CyberBard is the built-in session: a welcome banner, a tour of a quantum
// puzzle project, some live typing, a test run, a build, an animated
// visualisation, benchmarks, a commit and the outro.
func CyberBard() stream.Script {
	return func(yield func(stream.Fragment) bool) {
		s := &scene{yield: yield}

		introduce(s)
		typeCode(s)
		runTests(s)
		runBuild(s)
		visualize(s)
		benchmarks(s)
		wrapUp(s)
	}
}

func introduce(s *scene) {
	s.send(banner, ms(1000))

	s.send(prompt("whoami"), ms(500))
	s.send("\x1b[33mcyberbard\x1b[0m - The Creative Coding AI 🤖\r\n\r\n", ms(1000))

	s.send(prompt("date"), ms(500))
	s.send("Sat Feb  1 12:34:56 UTC 2026\r\n\r\n", ms(1000))

	s.send(prompt(`echo "Let's build something awesome!"`), ms(500))
	s.send("\x1b[1m\x1b[35mLet's build something awesome!\x1b[0m\r\n\r\n", ms(1500))

	s.send(prompt("cd quantum-puzzle-engine"), ms(800))
	s.send(prompt("ls -la"), ms(600))
	s.send(lsOutput, ms(1500))

	s.send(prompt("git status"), ms(700))
	s.send(gitStatus, ms(2000))

	s.send(prompt("cat README.md"), ms(600))
	s.send(readme, ms(2000))
}

func typeCode(s *scene) {
	s.send(prompt("vim src/utils/matrix-magic.ts"), ms(1000))
	s.send("\x1b[1m\x1b[33m-- INSERT MODE --\x1b[0m\r\n\r\n", ms(500))

	for i, line := range typedHeader {
		delay := ms(400)
		if i == len(typedHeader)-1 {
			// a pause to think before the body
			delay += ms(1000)
		}
		s.send(line, delay)
	}

	s.send("    \x1b[36mconst\x1b[0m rotation = \x1b[35mnew\x1b[0m Matrix3().makeRotation(phase);\r\n", ms(400))
	s.send("    \x1b[35mthis\x1b[0m.matrix.multiply(rotation);\r\n", ms(500))
	s.send("\r\n    \x1b[33m// Collapse wave function\x1b[0m\r\n", ms(400))
	s.send("    \x1b[35mthis\x1b[0m.waveFunction.forEach(\x1b[36mvec\x1b[0m => {\r\n", ms(400))
	s.send("      vec.applyMatrix3(\x1b[35mthis\x1b[0m.matrix);\r\n", ms(400))
	s.send("      vec.normalize();\r\n", ms(400))
	s.send("    });\r\n", ms(500))
	s.send("  }\r\n", ms(600))

	s.send("\r\n  \x1b[33m// Calculate entanglement coefficient\x1b[0m\r\n", ms(500))
	s.send("  \x1b[32mcalculateEntanglement\x1b[0m(other: \x1b[32mQuantumMatrix\x1b[0m): \x1b[32mnumber\x1b[0m {\r\n", ms(400))
	s.send("    \x1b[36mconst\x1b[0m determinant = \x1b[35mthis\x1b[0m.matrix.determinant();\r\n", ms(400))
	s.send("    \x1b[36mconst\x1b[0m otherDet = other.matrix.determinant();\r\n", ms(400))
	s.send("    \x1b[35mreturn\x1b[0m Math.sqrt(determinant * otherDet);\r\n", ms(400))
	s.send("  }\r\n", ms(500))
	s.send("}\r\n", ms(1000))

	s.send("\r\n\x1b[1m\x1b[32m[File saved: matrix-magic.ts]\x1b[0m\r\n\r\n", ms(1500))
}

func runTests(s *scene) {
	s.send(remark("Awesome! Let's run the tests"), ms(1000))
	s.send(prompt("npm test"), ms(1000))
	s.send(testOutput, ms(1200))

	s.send("\r\n\x1b[33mRunning tests\x1b[0m ", 0)
	ticks(s, 15, ms(150))
	s.send("\r\n\r\n", ms(500))

	s.send(testResults, ms(2000))
	s.send(coverage, ms(2500))
	s.send("\r\n\x1b[1m\x1b[32m✨ All tests passed! ✨\x1b[0m\r\n\r\n", ms(1500))
}

func runBuild(s *scene) {
	s.send(prompt("npm run build"), ms(1000))
	s.send(buildStart, ms(1000))

	s.send("\x1b[33mtransforming\x1b[0m ", 0)
	ticks(s, 20, ms(120))
	s.send("\r\n", ms(500))

	s.send(buildFiles, ms(2000))
	s.send("\x1b[1m\x1b[32m✓ Build complete!\x1b[0m\r\n\r\n", ms(1500))
}

// ticks sends n progress dots, each one its own fragment.
func ticks(s *scene, n int, delay time.Duration) {
	for range n {
		s.send(".", delay)
	}
}

func visualize(s *scene) {
	s.send(remark("Let's visualize the quantum state!"), ms(1000))
	s.send(prompt("node scripts/visualize-quantum.js")+"\r\n", ms(1000))
	s.send(vizHeader, ms(1000))

	// Each pass redraws the frames in place by moving back over them.
	for range 4 {
		for _, frame := range particleFrames {
			s.send("\r"+frame+"\r\n", ms(250))
		}
		s.send(ansi.CursorUp(len(particleFrames)), 0)
	}
	s.send(ansi.CursorDown(len(particleFrames)), ms(500))

	s.send(quantumStats, ms(2000))
}

func benchmarks(s *scene) {
	s.send(remark("Check system performance"), ms(1000))
	s.send(prompt("node scripts/benchmark.js")+"\r\n", ms(800))
	s.send(benchmarkHeader, ms(800))

	for _, op := range matrixOps {
		benchmarkRow(s, op, "\x1b[32m")
	}

	s.send("\r\n\x1b[1mQuantum Solver:\x1b[0m\r\n", ms(500))

	for _, op := range solverOps {
		benchmarkRow(s, op, "\x1b[35m")
	}

	s.send("\r\n\x1b[1m\x1b[32m✓ All benchmarks within acceptable range!\x1b[0m\r\n\r\n", ms(2000))
}

// benchmarkRow sends the label, then a bar of one block per two percent.
func benchmarkRow(s *scene, b benchmark, color string) {
	s.send("\x1b[33m"+b.name+":\x1b[0m "+b.result+" ", 0)
	bar := strings.Repeat("█", b.percent/2)
	s.send(color+bar+"\x1b[0m "+strconv.Itoa(b.percent)+"%\r\n", ms(600))
}

func wrapUp(s *scene) {
	s.send(prompt("git add src/utils/matrix-magic.ts"), ms(700))
	s.send(prompt(`git commit -m "feat: Add quantum matrix transformations with superposition"`), ms(800))
	s.send(commitOutput, ms(1500))

	s.send(prompt(`echo "Stream complete! Thanks for watching! 🎉"`), ms(500))
	s.send(outro, ms(2000))
	s.send(finale, 0)
}
