package script

// Screen content for the CyberBard session. Multi-line blocks use bare "\n"
// line breaks, matching what a terminal receives from a pty in raw mode.

const banner = "\x1b[1m\x1b[36m╔════════════════════════════════════════════════════════════════════════════════════════════════╗\n" +
	"║                                                                                                ║\n" +
	"║     \x1b[35m ██████╗██╗   ██╗██████╗ ███████╗██████╗ ██████╗  █████╗ ██████╗ ██████╗              ║\n" +
	"║    \x1b[35m██╔════╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗             ║\n" +
	"║    \x1b[35m██║      ╚████╔╝ ██████╔╝█████╗  ██████╔╝██████╔╝███████║██████╔╝██║  ██║             ║\n" +
	"║    \x1b[35m██║       ╚██╔╝  ██╔══██╗██╔══╝  ██╔══██╗██╔══██╗██╔══██║██╔══██╗██║  ██║             ║\n" +
	"║    \x1b[35m╚██████╗   ██║   ██████╔╝███████╗██║  ██║██████╔╝██║  ██║██║  ██║██████╔╝             ║\n" +
	"║     \x1b[35m╚═════╝   ╚═╝   ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝              ║\n" +
	"║                                                                                                ║\n" +
	"║                        \x1b[33m🎮 Welcome to the Live Coding Adventure! 🎮\x1b[36m                           ║\n" +
	"║                                                                                                ║\n" +
	"╚════════════════════════════════════════════════════════════════════════════════════════════════╝\x1b[0m\n" +
	"\n"

const lsOutput = "\x1b[34mtotal 42\x1b[0m\n" +
	"drwxr-xr-x  12 cyberbard  staff   384 Feb  1 12:30 \x1b[1m\x1b[34m.\x1b[0m\n" +
	"drwxr-xr-x   8 cyberbard  staff   256 Feb  1 09:15 \x1b[1m\x1b[34m..\x1b[0m\n" +
	"-rw-r--r--   1 cyberbard  staff   127 Feb  1 12:29 \x1b[36m.gitignore\x1b[0m\n" +
	"drwxr-xr-x   8 cyberbard  staff   256 Feb  1 12:30 \x1b[1m\x1b[34m.git\x1b[0m\n" +
	"-rw-r--r--   1 cyberbard  staff  2048 Feb  1 12:28 \x1b[33mREADME.md\x1b[0m\n" +
	"-rw-r--r--   1 cyberbard  staff   512 Feb  1 11:45 package.json\n" +
	"drwxr-xr-x   4 cyberbard  staff   128 Feb  1 12:10 \x1b[1m\x1b[34msrc\x1b[0m\n" +
	"drwxr-xr-x   3 cyberbard  staff    96 Feb  1 11:50 \x1b[1m\x1b[34mtests\x1b[0m\n" +
	"-rw-r--r--   1 cyberbard  staff   856 Feb  1 12:15 tsconfig.json\n" +
	"\n"

const gitStatus = "\x1b[1mOn branch\x1b[0m \x1b[1m\x1b[36mmain\x1b[0m\n" +
	"\x1b[1mYour branch is up to date with 'origin/main'.\x1b[0m\n" +
	"\n" +
	"\x1b[1mChanges not staged for commit:\x1b[0m\n" +
	"  \x1b[31m(use \"git add <file>...\" to update what will be committed)\x1b[0m\n" +
	"  \x1b[31m(use \"git restore <file>...\" to discard changes in working directory)\x1b[0m\n" +
	"\x1b[31m\tmodified:   src/engine/quantum-solver.ts\x1b[0m\n" +
	"\x1b[31m\tmodified:   src/components/PuzzleGrid.tsx\x1b[0m\n" +
	"\n" +
	"\x1b[1mUntracked files:\x1b[0m\n" +
	"  \x1b[31m(use \"git add <file>...\" to include in what will be committed)\x1b[0m\n" +
	"\x1b[31m\tsrc/utils/matrix-magic.ts\x1b[0m\n" +
	"\n" +
	"no changes added to commit (use \"git add\" and/or \"git commit -a\")\n" +
	"\n"

const readme = "\x1b[1m\x1b[36m# Quantum Puzzle Engine 🧩⚛️\x1b[0m\n" +
	"\n" +
	"\x1b[33mA mind-bending puzzle game that uses quantum mechanics principles!\x1b[0m\n" +
	"\n" +
	"## Features\n" +
	"- \x1b[32m✓\x1b[0m Quantum superposition of puzzle states\n" +
	"- \x1b[32m✓\x1b[0m Entanglement between puzzle pieces\n" +
	"- \x1b[32m✓\x1b[0m Wave function collapse mechanics\n" +
	"- \x1b[33m⚡\x1b[0m Real-time quantum simulation\n" +
	"- \x1b[35m🎨\x1b[0m Beautiful particle effects\n" +
	"\n" +
	"## Tech Stack\n" +
	"- TypeScript + React\n" +
	"- Three.js for 3D rendering\n" +
	"- Custom quantum simulation engine\n" +
	"\n" +
	"\x1b[1m## Current Progress\x1b[0m\n" +
	"🔥 Working on advanced matrix transformations for puzzle solving...\n" +
	"\n"

// typedHeader is the first stretch of matrix-magic.ts, typed at a steady rate.
var typedHeader = []string{
	"// Matrix Magic - Advanced transformations for quantum puzzles\r\n",
	"\x1b[36mimport\x1b[0m { Matrix3, Vector3 } \x1b[36mfrom\x1b[0m \x1b[33m'three'\x1b[0m;\r\n",
	"\r\n",
	"\x1b[35mexport\x1b[0m \x1b[36mclass\x1b[0m \x1b[32mQuantumMatrix\x1b[0m {\r\n",
	"  \x1b[36mprivate\x1b[0m matrix: Matrix3;\r\n",
	"  \x1b[36mprivate\x1b[0m waveFunction: \x1b[32mVector3\x1b[0m[];\r\n",
	"\r\n",
	"  \x1b[36mconstructor\x1b[0m() {\r\n",
	"    \x1b[35mthis\x1b[0m.matrix = \x1b[35mnew\x1b[0m Matrix3();\r\n",
	"    \x1b[35mthis\x1b[0m.waveFunction = [];\r\n",
	"  }\r\n",
	"\r\n",
	"  \x1b[33m// Apply quantum superposition to matrix\x1b[0m\r\n",
	"  \x1b[32mapplySuperposition\x1b[0m(amplitude: \x1b[32mnumber\x1b[0m): \x1b[32mvoid\x1b[0m {\r\n",
	"    \x1b[36mconst\x1b[0m phase = Math.PI * amplitude;\r\n",
}

const testOutput = "\r\n" +
	"\x1b[1m> quantum-puzzle-engine@1.0.0 test\x1b[0m\n" +
	"> jest --coverage\n" +
	"\n" +
	"\x1b[36m RUNS \x1b[0m tests/matrix-magic.test.ts\n" +
	"\x1b[36m RUNS \x1b[0m tests/quantum-solver.test.ts\n"

const testResults = "\x1b[32m PASS \x1b[0m tests/matrix-magic.test.ts\n" +
	"  \x1b[1mQuantumMatrix\x1b[0m\n" +
	"    \x1b[32m✓\x1b[0m should initialize properly (3ms)\n" +
	"    \x1b[32m✓\x1b[0m should apply superposition (5ms)\n" +
	"    \x1b[32m✓\x1b[0m should calculate entanglement (4ms)\n" +
	"    \x1b[32m✓\x1b[0m should handle wave function collapse (12ms)\n" +
	"\n" +
	"\x1b[32m PASS \x1b[0m tests/quantum-solver.test.ts\n" +
	"  \x1b[1mQuantumSolver\x1b[0m\n" +
	"    \x1b[32m✓\x1b[0m should solve 3x3 quantum puzzle (45ms)\n" +
	"    \x1b[32m✓\x1b[0m should handle entangled states (28ms)\n" +
	"    \x1b[32m✓\x1b[0m should optimize solution path (67ms)\n" +
	"\n"

const coverage = "\x1b[1m\x1b[32m----------------------|---------|----------|---------|---------|-------------------\x1b[0m\n" +
	"\x1b[1mFile                  | % Stmts | % Branch | % Funcs | % Lines | Uncovered Line #s\x1b[0m\n" +
	"\x1b[1m\x1b[32m----------------------|---------|----------|---------|---------|-------------------\x1b[0m\n" +
	"\x1b[1mAll files            |\x1b[0m \x1b[32m  96.24\x1b[0m |\x1b[0m \x1b[32m   91.30\x1b[0m |\x1b[0m \x1b[32m   100\x1b[0m |\x1b[0m \x1b[32m  95.83\x1b[0m |\x1b[0m \x1b[1m                  \x1b[0m\n" +
	" matrix-magic.ts     |\x1b[0m \x1b[32m    100\x1b[0m |\x1b[0m \x1b[32m    100\x1b[0m |\x1b[0m \x1b[32m   100\x1b[0m |\x1b[0m \x1b[32m   100\x1b[0m |\x1b[0m \x1b[1m                  \x1b[0m\n" +
	" quantum-solver.ts   |\x1b[0m \x1b[32m  94.73\x1b[0m |\x1b[0m \x1b[33m   88.88\x1b[0m |\x1b[0m \x1b[32m   100\x1b[0m |\x1b[0m \x1b[32m  93.75\x1b[0m |\x1b[0m \x1b[1m 45-47            \x1b[0m\n" +
	"\x1b[1m\x1b[32m----------------------|---------|----------|---------|---------|-------------------\x1b[0m\n" +
	"\n" +
	"\x1b[1m\x1b[32mTest Suites: \x1b[0m\x1b[1m\x1b[32m2 passed\x1b[0m, 2 total\n" +
	"\x1b[1m\x1b[32mTests:       \x1b[0m\x1b[1m\x1b[32m7 passed\x1b[0m, 7 total\n" +
	"\x1b[1mSnapshots:   \x1b[0m0 total\n" +
	"\x1b[1mTime:        \x1b[0m2.847 s\n"

const buildStart = "\r\n" +
	"\x1b[1m> quantum-puzzle-engine@1.0.0 build\x1b[0m\n" +
	"> tsc && vite build\n" +
	"\n" +
	"\x1b[36mvite v4.5.0\x1b[0m building for production...\n"

const buildFiles = "\x1b[32m✓\x1b[0m 47 modules transformed.\n" +
	"\x1b[36mrendering chunks\x1b[0m...\n" +
	"\x1b[32m✓\x1b[0m built in 1.23s\n" +
	"\n" +
	"\x1b[1mdist/\x1b[0m\n" +
	"├── \x1b[32massets/\x1b[0m\n" +
	"│   ├── index-a3b5c7d9.css         \x1b[2m12.45 kB │ gzip: 3.21 kB\x1b[0m\n" +
	"│   ├── index-f8e9a2b1.js          \x1b[2m156.78 kB │ gzip: 52.34 kB\x1b[0m\n" +
	"│   └── quantum-worker-c4d5e6f7.js \x1b[2m34.56 kB │ gzip: 11.23 kB\x1b[0m\n" +
	"└── index.html                      \x1b[2m0.89 kB\x1b[0m\n" +
	"\n"

const vizHeader = "\x1b[1m\x1b[35m╔═══════════════════════════════════════════════════════╗\n" +
	"║        QUANTUM STATE VISUALIZATION                ║\n" +
	"╚═══════════════════════════════════════════════════════╝\x1b[0m\n" +
	"\n"

// particleFrames are the animation states of the quantum visualisation.
var particleFrames = []string{
	"  \x1b[36m⚛\x1b[0m           \x1b[35m◉\x1b[0m         \x1b[33m⚛\x1b[0m              \x1b[32m◉\x1b[0m",
	"      \x1b[35m◉\x1b[0m    \x1b[36m⚛\x1b[0m              \x1b[32m◉\x1b[0m    \x1b[33m⚛\x1b[0m     ",
	"  \x1b[33m⚛\x1b[0m              \x1b[32m◉\x1b[0m    \x1b[36m⚛\x1b[0m         \x1b[35m◉\x1b[0m   ",
	"         \x1b[32m◉\x1b[0m    \x1b[33m⚛\x1b[0m         \x1b[35m◉\x1b[0m    \x1b[36m⚛\x1b[0m      ",
	"  \x1b[36m⚛\x1b[0m    \x1b[35m◉\x1b[0m              \x1b[33m⚛\x1b[0m    \x1b[32m◉\x1b[0m         ",
}

const quantumStats = "\r\n" +
	"\x1b[1mQuantum State Analysis:\x1b[0m\n" +
	"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n" +
	"\x1b[36m Superposition States:\x1b[0m    \x1b[1m8,192\x1b[0m\n" +
	"\x1b[35m Entangled Pairs:\x1b[0m         \x1b[1m42\x1b[0m\n" +
	"\x1b[33m Wave Function Ψ:\x1b[0m         \x1b[1m0.89234 + 0.45127i\x1b[0m\n" +
	"\x1b[32m Coherence Factor:\x1b[0m        \x1b[1m94.3%\x1b[0m\n" +
	"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n" +
	"\n"

const benchmarkHeader = "\x1b[1m\x1b[36m⚡ PERFORMANCE BENCHMARKS ⚡\x1b[0m\n" +
	"\n" +
	"\x1b[1mMatrix Operations:\x1b[0m\n"

// benchmark is one row of the fake benchmark report.
type benchmark struct {
	name    string
	result  string
	percent int
}

var matrixOps = []benchmark{
	{"  Multiplication", "156,234 ops/sec", 98},
	{"  Inversion", "89,456 ops/sec", 87},
	{"  Transposition", "234,567 ops/sec", 99},
}

var solverOps = []benchmark{
	{"  3x3 Puzzle", "2.3ms avg", 95},
	{"  5x5 Puzzle", "12.7ms avg", 92},
	{"  7x7 Puzzle", "45.2ms avg", 89},
}

const commitOutput = "\x1b[1m[main a3b5c7d]\x1b[0m feat: Add quantum matrix transformations with superposition\n" +
	" 1 file changed, 87 insertions(+)\n" +
	" create mode 100644 src/utils/matrix-magic.ts\n" +
	"\n"

const outro = "\r\n" +
	"\x1b[1m\x1b[36m┌─────────────────────────────────────────────────────────────┐\n" +
	"│                                                             │\n" +
	"│          \x1b[35m🎮 Thanks for joining the adventure! 🎮\x1b[36m            │\n" +
	"│                                                             │\n" +
	"│  We built some awesome quantum puzzle mechanics today!      │\n" +
	"│                                                             │\n" +
	"│  \x1b[32m✓\x1b[36m Created matrix transformation utilities                  │\n" +
	"│  \x1b[32m✓\x1b[36m Implemented quantum superposition logic                 │\n" +
	"│  \x1b[32m✓\x1b[36m All tests passing with 96% coverage                     │\n" +
	"│  \x1b[32m✓\x1b[36m Production build optimized and ready                    │\n" +
	"│                                                             │\n" +
	"│  \x1b[33mSee you next time, coding wizards!\x1b[36m ✨                      │\n" +
	"│                                                             │\n" +
	"└─────────────────────────────────────────────────────────────┘\x1b[0m\n" +
	"\n" +
	"\x1b[32m[CyberBard]$\x1b[0m _\n" +
	"\n"

// The art line ending in `|  _ \` is followed by a newline. Its trailing
// backslash is part of the lettering and does not join it to the next line.
const finale = "\r\n" +
	"\x1b[35m\n" +
	`          *    .  *   .   *     .     *` + "\n" +
	`    .  *   .    *  .    . *   .   *   .` + "\n" +
	`  *    .  *  .   *   . *   .   *  .  *` + "\n" +
	`     ___  _   _ ______ _____ ____  ____    _    ____  ____` + "\n" +
	`    / __\| | | | __ __|_____| __ )|  _ \  / \  |  _ \|  _ \` + "\n" +
	`   | |   | |_| |  _ |_| |__ | |  || | |_|/ _ \ | |_) | | | |` + "\n" +
	`   | |   |___  | |____|____|| | / | | / / ___ \|  _ <| |_| |` + "\n" +
	`    \___\|    | |______|____||___ \| |_|/_/   \_\_| \_\____/` + "\n" +
	`              |_|` + "\n" +
	`  *    .  *   .   *     .     *  .  *   .   *` + "\n" +
	`    .  *   .    *  .    . *   .   *   .  *` + "\n" +
	"\n" +
	"           \x1b[33m🎵 Keep on coding! 🎵\x1b[0m\x1b[35m\n" +
	"  *    .  *   .   *     .     *  .  *   .   *\n" +
	"\n" +
	"\x1b[0m"
