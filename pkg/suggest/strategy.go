package suggest

// Context carries everything a Strategy needs to generate candidates for
// one query: the original-case word, a borrowed dictionary reference, a
// result bound, and a free-form options bag individual strategies may
// read (e.g. a phonetic algorithm override).
type Context struct {
	Word       string
	Dictionary WordSource
	MaxResults int
	Options    map[string]any
}

// Strategy is one candidate-generation algorithm. Concrete strategies
// declare a default source tag and their own enable/priority knobs;
// Composite only relies on Handles/Generate/Source.
type Strategy interface {
	Handles(ctx *Context) bool
	Generate(ctx *Context) *SuggestionSet
	Source() string
}

// Composite fans a query out to every strategy that handles it and
// merges their outputs into a single bounded SuggestionSet.
type Composite struct {
	strategies []Strategy
}

// NewComposite builds a Composite over strategies, in the given order.
// Order only matters for the underlying stable sort's tie-breaking
// before ranking is applied; the final order is always determined by
// the ranking key in suggestion.go.
func NewComposite(strategies ...Strategy) *Composite {
	return &Composite{strategies: strategies}
}

// Generate runs every applicable strategy and merges their results.
func (c *Composite) Generate(ctx *Context, maxSize int, weights Weights) *SuggestionSet {
	out := NewSuggestionSet(maxSize, weights)
	for _, strat := range c.strategies {
		if !strat.Handles(ctx) {
			continue
		}
		out.Merge(strat.Generate(ctx))
	}
	return out
}

// defaultStrategyParams holds the tunable knobs DefaultStrategies seeds
// its four strategies with. Configure overrides these from a loaded
// config.Config, the same global-package-default idiom
// charmbracelet/log uses for its level.
var defaultStrategyParams = struct {
	editMaxDistance     int
	phoneticAlgorithm   Algorithm
	keyboardMaxDistance int
	ngramSize           int
	ngramMinSimilarity  float64
	accelThreshold      int
}{
	editMaxDistance:     2,
	phoneticAlgorithm:   SoundexAlgorithm,
	keyboardMaxDistance: 2,
	ngramSize:           3,
	ngramMinSimilarity:  0.2,
	accelThreshold:      2000,
}

// Configure overrides the package-level ranking weights (DefaultWeights)
// and the strategy parameters that DefaultStrategies and GenerateAuto
// read. Generate itself uses whatever weights its caller passes.
// Dictionary backends never take a
// Weights/Strategy argument of their own (spec's Dictionary.Suggest(word,
// max) contract is fixed), so a loaded config.Config seeds these
// process-wide defaults once at startup instead.
func Configure(weights Weights, editMaxDistance int, phoneticAlgorithm Algorithm, keyboardMaxDistance int, ngramSize int, ngramMinSimilarity float64, accelThreshold int) {
	DefaultWeights = weights
	defaultStrategyParams.editMaxDistance = editMaxDistance
	defaultStrategyParams.phoneticAlgorithm = phoneticAlgorithm
	defaultStrategyParams.keyboardMaxDistance = keyboardMaxDistance
	defaultStrategyParams.ngramSize = ngramSize
	defaultStrategyParams.ngramMinSimilarity = ngramMinSimilarity
	defaultStrategyParams.accelThreshold = accelThreshold
}

// DefaultStrategies returns new instances of the four built-in
// strategies in spec order: edit-distance, phonetic, keyboard-proximity,
// n-gram.
func DefaultStrategies() []Strategy {
	return []Strategy{
		NewEditDistanceStrategy(defaultStrategyParams.editMaxDistance),
		NewPhoneticStrategy(defaultStrategyParams.phoneticAlgorithm),
		NewKeyboardProximityStrategy(defaultStrategyParams.keyboardMaxDistance),
		NewNgramStrategy(defaultStrategyParams.ngramSize, defaultStrategyParams.ngramMinSimilarity),
	}
}

// Generate is the top-level facade: given a dictionary and an optional
// strategy list (nil defaults to DefaultStrategies), route word through
// the composite. A word already present in the dictionary short-circuits
// to an empty set without invoking any strategy.
func Generate(ws WordSource, word string, maxResults int, strategies []Strategy, weights Weights) *SuggestionSet {
	if word == "" || ws.Contains(word) {
		return NewSuggestionSet(maxResults, weights)
	}
	if strategies == nil {
		strategies = DefaultStrategies()
	}
	ctx := &Context{Word: word, Dictionary: ws, MaxResults: maxResults}
	return NewComposite(strategies...).Generate(ctx, maxResults, weights)
}
