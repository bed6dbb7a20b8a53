package usecase

import "fmt"

const cleaningTemplate = `Clean and standardize this news article content.

Remove:
- Advertising text
- Navigation elements
- Subscription prompts
- Unrelated side content

Keep:
- Main article text
- Important quotes
- Relevant context

Original content:
%s

Return only the cleaned article text.`

const trustTemplate = `You are an expert fact-checker and media analyst. Evaluate the trustworthiness of this news article.

Consider the following factors:
- Source credibility and reputation
- Presence of citations and references
- Balanced presentation vs. bias
- Factual accuracy indicators
- Writing quality and professionalism

Article Details:
Title: %s
Author(s): %s
Published: %s
Content Preview: %s

Provide your evaluation in JSON format:
{
    "score": <number between 0-10>,
    "reasoning": "<brief explanation>",
    "red_flags": ["<flag1>", "<flag2>"],
    "strengths": ["<strength1>", "<strength2>"]
}`

const factTemplate = `You are a professional news analyst. Extract the most important facts from this article.

Focus on:
- Key events and developments
- Important statistics and data points
- Named entities (people, organizations, locations)
- Dates and timelines
- Cause-and-effect relationships

Article:
Title: %s
Content: %s

Return 3-5 key facts as a numbered list. Each fact should be concise and verifiable.`

const reportTemplate = `You are a senior news editor creating a comprehensive analysis report.

Based on the extracted facts from multiple news sources, create a professional report with the following structure:

## Executive Summary
A 2-3 sentence overview of the main findings.

## Key Findings
The most important facts and developments, organized by theme.

## Source Analysis
Brief assessment of source reliability and coverage patterns.

## Trend Analysis
Identify emerging patterns or trends across the sources.

## Conclusion
Final takeaways and implications.

Facts from analyzed articles:
%s

Trustworthiness scores:
%s

Create a well-structured, objective report.`

func cleaningPrompt(content string) string {
	return fmt.Sprintf(cleaningTemplate, content)
}

func trustPrompt(title, authors, publishDate, preview string) string {
	return fmt.Sprintf(trustTemplate, title, authors, publishDate, preview)
}

func factPrompt(title, content string) string {
	return fmt.Sprintf(factTemplate, title, content)
}

func reportPrompt(facts, scores string) string {
	return fmt.Sprintf(reportTemplate, facts, scores)
}
