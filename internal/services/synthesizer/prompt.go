// Package synthesizer turns a scraped news corpus into an investor
// report plus a sentiment-ready rephrasing, using a single model call so
// both outputs come from the same context.
package synthesizer

import "github.com/ternarybob/sentio/internal/interfaces"

// synthesisPrompt instructs the model to produce both outputs at once:
// a markdown report for investors and a plain-text distillation suitable
// for a sentiment model.
const synthesisPrompt = `You are assigned the task of analyzing a large amount of news articles related to an industry or market segment.
You have two tasks.
First, generate a comprehensive report on the text for investors that gives insights into the current state of the industry.
Tailor the report to be suitable for investors looking and searching for opportunities, focusing on key trends, challenges, and opportunities in the industry.
Second, analyze, extract and rephrase sentences from the text to be passed to a sentiment analysis model. Make sure to extract only the most relevant sentences that capture the essence and sentiment of the news articles.

Make sure the report is properly markdown formatted with headings, bullet points, and other formatting elements to enhance readability.
Don't use markdown for the sentiment text, just return the sentences as plain text.`

// buildMessages assembles the two-message conversation for a synthesis
// call: the fixed instructions plus the corpus as the user turn.
func buildMessages(corpus string) []interfaces.Message {
	return []interfaces.Message{
		{Role: "system", Content: synthesisPrompt},
		{Role: "user", Content: corpus},
	}
}
