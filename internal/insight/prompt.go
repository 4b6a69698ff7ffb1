package insight

import (
	"fmt"
	"strings"
)

// Intent selects which fixed instructional template and which context fields
// are embedded.
type Intent int

const (
	EdaSummary Intent = iota
	Qa
	DocumentAnalysis
)

func (i Intent) String() string {
	switch i {
	case EdaSummary:
		return "eda-summary"
	case Qa:
		return "qa"
	case DocumentAnalysis:
		return "document-analysis"
	default:
		return "unknown"
	}
}

// MaxPromptChars is the documented hard cap on composed prompts. It holds
// because context is bounded upstream (document.PromptCap, fixed sample row
// count); Compose itself never truncates, avoiding double-truncation drift.
const MaxPromptChars = 32000

// ValidationError indicates an input-contract violation detected before any
// prompt is built or collaborator called.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid request: " + e.Reason }

const edaTemplate = `Analyze this dataset and provide a structured report:

Dataset Overview:
- Shape: (%d, %d)
- Columns: %s
- Sample Rows: %s

Please provide:
1. Data Quality Assessment (missing values, duplicates)
2. Statistical Summary (for numeric columns)
3. Interesting Patterns/Observations
4. Recommendations for:
   - Data Cleaning
   - Further Analysis
   - Potential Visualizations

Keep the response concise and structured with clear headings.`

const qaTemplate = `You are a data analyst assistant. Answer the following question about the dataset:

Question: %s

Dataset Context:
- Columns: %s
- Data Types: %s
- Sample Data: %s
- Null Values Count: %s

Provide:
1. A clear answer to the question
2. Relevant statistics if applicable
3. Any caveats or limitations in the data
4. Suggestions for further analysis if relevant

If the question cannot be answered with the available data, explain why.`

const documentTemplate = `Please analyze this document and provide:
1. A concise summary of key points
2. Main topics covered
3. Any notable patterns or insights

Document content:
%s`

// templates maps each intent to its builder so the section-ordering and
// size-bound rules live in exactly one place per intent.
var templates = map[Intent]func(*Context, string) (string, error){
	EdaSummary:       composeEda,
	Qa:               composeQa,
	DocumentAnalysis: composeDocument,
}

// Compose assembles the prompt for an intent. Composition is pure string
// assembly over an already-bounded Context; the same intent and Context
// always produce the same string.
func Compose(intent Intent, ctx *Context, question string) (string, error) {
	build, ok := templates[intent]
	if !ok {
		return "", &ValidationError{Reason: fmt.Sprintf("unknown prompt intent %d", intent)}
	}
	if ctx == nil {
		return "", &ValidationError{Reason: "missing analysis context"}
	}
	return build(ctx, question)
}

func composeEda(ctx *Context, _ string) (string, error) {
	if ctx.Table == nil {
		return "", &ValidationError{Reason: "EDA summary requires tabular context"}
	}
	t := ctx.Table
	return fmt.Sprintf(edaTemplate, t.Rows, t.Cols, t.columnsList(), t.sampleList()), nil
}

func composeQa(ctx *Context, question string) (string, error) {
	if ctx.Table == nil {
		return "", &ValidationError{Reason: "question answering requires tabular context"}
	}
	if strings.TrimSpace(question) == "" {
		return "", &ValidationError{Reason: "a question is required"}
	}
	t := ctx.Table
	return fmt.Sprintf(qaTemplate, question, t.columnsList(), t.dtypesList(), t.sampleList(), t.nullCountsList()), nil
}

func composeDocument(ctx *Context, _ string) (string, error) {
	if ctx.Document == nil {
		return "", &ValidationError{Reason: "document analysis requires document context"}
	}
	return fmt.Sprintf(documentTemplate, ctx.Document.Text), nil
}
