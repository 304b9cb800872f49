package extract

// defaultTickerWhitelist is the closed configured set of 2-5 letter
// uppercase runs that are always classified as tickers. Callers may
// override via config; this is the built-in default used when none is
// supplied.
var defaultTickerWhitelist = []string{
	"BTC", "ETH", "SOL", "USDC", "USDT", "SPY", "QQQ", "AAPL", "MSFT",
	"GOOG", "AMZN", "TSLA", "NVDA", "META",
}

// defaultTickerStoplist is the closed configured set of short uppercase
// English words and abbreviations that must never be classified as
// tickers regardless of context. A representative subset of common
// English function words and acronyms; config can extend it.
var defaultTickerStoplist = []string{
	"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN", "HER",
	"WAS", "ONE", "OUR", "OUT", "DAY", "GET", "HAS", "HIM", "HIS", "HOW",
	"MAN", "NEW", "NOW", "OLD", "SEE", "TWO", "WAY", "WHO", "BOY", "DID",
	"ITS", "LET", "PUT", "SAY", "SHE", "TOO", "USE", "DUE", "YES", "YET",
	"ANY", "ASK", "BAD", "BIG", "BOX", "CUT", "END", "FAR", "FEW", "GOT",
	"LOT", "LOW", "MAY", "OFF", "OWN", "RUN", "SET", "SIT", "TOP", "TRY",
	"WIN", "AGO", "AIR", "ARM", "ART", "BED", "BIT", "BUY", "CAR", "CUP",
	"EAT", "EYE", "FLY", "GUN", "HOT", "JOB", "KEY", "LAW", "LEG", "LIE",
	"MAP", "MOM", "DAD", "OIL", "PAY", "RED", "SUN", "TAX", "WAR", "AM",
	"PM", "US", "EU", "UK", "UN", "OK", "ID", "IT", "AN", "AS", "AT",
	"BE", "BY", "DO", "GO", "HE", "IF", "IN", "IS", "ME", "MY", "NO",
	"OF", "ON", "OR", "SO", "TO", "UP", "WE", "API", "URL", "FAQ", "CEO",
	"CFO", "CTO", "HQ", "ETA", "ASAP", "FYI", "TBD", "TODO", "AKA",
}

// defaultTools is the closed configured list of tool/technology names
// matched case-insensitively anywhere in a paragraph: container runtimes,
// CI systems, cloud providers, and internal tool names.
var defaultTools = []string{
	"docker", "kubernetes", "k8s", "containerd", "podman",
	"github actions", "gitlab ci", "circleci", "jenkins", "travis ci",
	"aws", "gcp", "azure", "cloudflare", "vercel", "fly.io", "heroku",
	"postgres", "postgresql", "mysql", "sqlite", "redis", "kafka",
	"rabbitmq", "nats", "grpc", "graphql", "terraform", "ansible",
	"prometheus", "grafana", "datadog", "sentry",
	"go", "golang", "rust", "python", "typescript", "javascript",
	"react", "vue", "svelte", "node.js", "deno", "bun",
	"git", "github", "gitlab", "bitbucket",
	"claude", "claude code", "openai", "anthropic", "cursor", "vscode",
	"slack", "notion", "linear", "jira",
}

// defaultProjectPatterns is a small set of configured multi-word project
// names (e.g. "Asymmetry Scanner", "Knowledge Engine"). This list is
// deployment-specific; operators extend it via config.
var defaultProjectPatterns = []string{
	"asymmetry scanner", "knowledge engine", "memory city",
}
