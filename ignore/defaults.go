package ignore

// DefaultIgnorePatterns contains patterns that are always skipped when
// generating a document. These are directories and files that never carry
// information worth summarizing.
var DefaultIgnorePatterns = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Dependencies
	"node_modules",
	"vendor",
	"bower_components",
	".npm",
	".yarn",

	// Build output
	"dist",
	"build",
	"out",
	"target",
	"obj",

	// IDE / Editor
	".idea",
	".vscode",
	".vs",
	"*.swp",
	"*.swo",
	"*~",

	// OS files
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",

	// Python
	"__pycache__",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	".venv",
	"venv",

	// Compiled / Binary extensions
	"*.exe",
	"*.dll",
	"*.so",
	"*.dylib",
	"*.o",
	"*.a",
	"*.class",
	"*.jar",
	"*.war",

	// Archives
	"*.zip",
	"*.tar",
	"*.tar.gz",
	"*.tgz",
	"*.rar",
	"*.7z",

	// Images
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.bmp",
	"*.ico",
	"*.webp",

	// Fonts
	"*.woff",
	"*.woff2",
	"*.ttf",
	"*.eot",
	"*.otf",

	// Media
	"*.mp3",
	"*.mp4",
	"*.avi",
	"*.mov",
	"*.wav",

	// Documents
	"*.pdf",
	"*.doc",
	"*.docx",
	"*.xls",
	"*.xlsx",
	"*.ppt",
	"*.pptx",

	// Minified files
	"*.min.js",
	"*.min.css",

	// Lock files
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Gemfile.lock",
	"poetry.lock",
	"Cargo.lock",
	"go.sum",
	"composer.lock",

	// Source maps
	"*.map",

	// Coverage
	"coverage",
	".nyc_output",
	"htmlcov",

	// Cache
	".cache",
	".parcel-cache",
	".next",
	".nuxt",

	// Database files
	"*.sqlite",
	"*.sqlite3",
	"*.db",
}
