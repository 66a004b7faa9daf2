// Package ai answers questions about job postings through the Groq
// chat-completions API, degrading to a deterministic rule-based answer
// whenever the API cannot be reached.
package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gigsterhq/gigster/pkg/models"
)

const (
	defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel  = "llama-3.3-70b-versatile"
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
// AskAboutJob and GeneralAnswer never fail: any transport or
// authorization problem falls back to a rule-based answer built from
// the job record itself.
type Client struct {
	APIURL     string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewClient returns a client for the Groq API. An empty apiKey is
// allowed; the client then always answers from the fallback rules.
func NewClient(apiKey string) *Client {
	return &Client{
		APIURL:     defaultAPIURL,
		APIKey:     apiKey,
		Model:      defaultModel,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether a real API call can be attempted.
func (c *Client) Available() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// AskAboutJob answers a question about a specific job. The question is
// typo-corrected first; the answer comes from the API when possible and
// from the keyword fallback otherwise.
func (c *Client) AskAboutJob(question string, job models.Job) string {
	improved := ImproveQuestion(question)
	if !c.Available() {
		return fallbackAnswer(improved, job)
	}

	answer, err := c.complete(jobSystemPrompt(job), improved, 600)
	if err != nil {
		return fallbackAnswer(improved, job)
	}
	return answer
}

// GeneralAnswer answers a question that is not tied to a job.
func (c *Client) GeneralAnswer(question string) string {
	improved := ImproveQuestion(question)
	if !c.Available() {
		return generalFallback(improved)
	}

	system := "You are a helpful job search assistant. Be friendly, encouraging, and informative. " +
		"Always respond in English. Help users with career advice, job search tips, and general employment questions."
	answer, err := c.complete(system, improved, 400)
	if err != nil {
		return generalFallback(improved)
	}
	return answer
}

func (c *Client) complete(systemPrompt, userPrompt string, maxTokens int) (string, error) {
	reqBody := map[string]interface{}{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"max_tokens":  maxTokens,
		"temperature": 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("chat API error: %s", string(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	choices, ok := result["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("unexpected response format")
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}
	content, ok := message["content"].(string)
	if !ok || strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty response content")
	}

	return strings.TrimSpace(content), nil
}

// jobSystemPrompt templates the system prompt from the job record.
func jobSystemPrompt(job models.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful AI assistant helping users learn about job opportunities.\n")
	fmt.Fprintf(&b, "You are currently discussing this specific job:\n\n")
	fmt.Fprintf(&b, "**Job Title:** %s\n", job.Title)
	fmt.Fprintf(&b, "**Company:** %s\n", job.Company)
	fmt.Fprintf(&b, "**Location:** %s\n", job.Location)

	workType := string(job.WorkLocation)
	if workType == "" {
		workType = "Office-based"
	}
	fmt.Fprintf(&b, "**Work Type:** %s\n", workType)
	fmt.Fprintf(&b, "**Salary:** %s\n", job.Salary)
	fmt.Fprintf(&b, "**Requirements:** %s\n", strings.Join(job.Requirements, ", "))
	if len(job.Benefits) > 0 {
		fmt.Fprintf(&b, "**Benefits:** %s\n", strings.Join(job.Benefits, ", "))
	}
	if job.AboutCompany != "" {
		fmt.Fprintf(&b, "**About Company:** %s\n", job.AboutCompany)
	}
	if job.Description != "" {
		fmt.Fprintf(&b, "**Job Description:** %s\n", job.Description)
	}

	b.WriteString(`
Instructions:
- Answer questions specifically about this job
- Be helpful, friendly, and encouraging
- If you don't have specific information, suggest they ask during the interview
- Keep responses concise but informative
- Focus on helping the user understand if this role is a good fit
- Always respond in English

Please answer the user's question about this job position.`)
	return b.String()
}

// corrections maps common misspellings and chat abbreviations to their
// corrected forms. Applied whole-word, case-insensitively.
var corrections = []struct {
	typo    string
	correct string
}{
	{"salery", "salary"},
	{"benifits", "benefits"},
	{"requirments", "requirements"},
	{"responsiblities", "responsibilities"},
	{"expirience", "experience"},
	{"oppurtunity", "opportunity"},
	{"compnay", "company"},
	{"loaction", "location"},
	{"wrk", "work"},
	{"hw", "how"},
	{"wat", "what"},
	{"wen", "when"},
	{"wher", "where"},
	{"teh", "the"},
	{"adn", "and"},
	{"tehm", "them"},
	{"yor", "your"},
	{"u", "you"},
	{"ur", "your"},
	{"r", "are"},
	{"n", "and"},
	{"&", "and"},
}

var correctionRegexps = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(corrections))
	for i, c := range corrections {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(c.typo) + `\b`)
	}
	return res
}()

var interrogativeStart = regexp.MustCompile(`(?i)^(what|how|when|where|why|who|is|are|can|do|does|will|would|should)`)

// ImproveQuestion fixes common typos and appends a question mark when
// the text starts with an interrogative word and doesn't already end
// with one.
func ImproveQuestion(question string) string {
	improved := strings.TrimSpace(question)
	for i, c := range corrections {
		improved = correctionRegexps[i].ReplaceAllString(improved, c.correct)
	}
	if interrogativeStart.MatchString(improved) && !strings.HasSuffix(improved, "?") {
		improved += "?"
	}
	return improved
}

// fallbackAnswer builds a deterministic answer from the job's own
// fields by keyword-matching the question.
func fallbackAnswer(question string, job models.Job) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "remote", "work from home", "wfh"):
		var workInfo, commute string
		switch job.WorkLocation {
		case models.WorkRemote:
			workInfo = "This is a fully remote position, giving you the flexibility to work from anywhere!"
			commute = "Since it's remote, you won't need to commute!"
		case models.WorkHybrid:
			workInfo = "This is a hybrid role with flexible remote work options. You'll have the ability to split your time between home and office."
			commute = "You might want to consider commute times to the office."
		default:
			workInfo = "This position is primarily office-based, but many companies today offer some remote work flexibility."
			commute = "You might want to consider commute times to the office."
		}
		return fmt.Sprintf("%s The location is listed as %s. %s", workInfo, job.Location, commute)

	case containsAny(q, "salary", "pay", "compensation", "money"):
		benefitsText := ""
		if len(job.Benefits) > 0 {
			benefitsText = fmt.Sprintf(" Additionally, this role includes benefits such as: %s.", strings.Join(firstN(job.Benefits, 4), ", "))
		}
		return fmt.Sprintf("The salary range for this %s position is %s.%s Keep in mind that the final offer may depend on your experience and qualifications.",
			job.Title, job.Salary, benefitsText)

	case containsAny(q, "requirement", "qualification", "skill", "experience"):
		reqText := "The specific requirements weren't detailed in the job posting."
		if len(job.Requirements) > 0 {
			reqText = fmt.Sprintf("The key requirements include: %s.", strings.Join(job.Requirements, ", "))
		}
		return reqText + " These are the main qualifications they're looking for. Consider how your background aligns with these requirements when applying."

	case containsAny(q, "benefit", "perk", "package"):
		if len(job.Benefits) > 0 {
			return fmt.Sprintf("Great question! This role includes these benefits: %s. This gives you a good sense of the overall compensation package beyond just salary.",
				strings.Join(job.Benefits, ", "))
		}
		return "While specific benefits aren't listed in this job posting, most companies offer standard packages including health insurance, PTO, and retirement plans. This would be an excellent question to ask during the interview process."

	case containsAny(q, "company", "culture", "team", "environment"):
		companyInfo := fmt.Sprintf("%s appears to be the hiring company for this %s role.", job.Company, job.Title)
		if job.AboutCompany != "" {
			companyInfo = fmt.Sprintf("Here's what we know about %s: %s", job.Company, job.AboutCompany)
		}
		return companyInfo + " Company culture is really important for job satisfaction, so I'd recommend researching them further and asking about team dynamics during your interview."

	case containsAny(q, "apply", "application", "interview"):
		return fmt.Sprintf("To apply for this %s position at %s, you can swipe right on the card. Make sure your resume highlights relevant experience from the requirements: %s. Good luck with your application!",
			job.Title, job.Company, strings.Join(firstN(job.Requirements, 3), ", "))

	case containsAny(q, "growth", "career", "advancement", "promotion"):
		return fmt.Sprintf("Career growth is crucial! While specific advancement paths aren't detailed in this posting, the %s role at %s could be a great stepping stone. I'd recommend asking about professional development opportunities and career progression during the interview process.",
			job.Title, job.Company)
	}

	return fmt.Sprintf("That's a thoughtful question about this %s position at %s! While I don't have specific details about that aspect, here's what I can tell you: the role is located in %s, offers %s, and they're looking for someone with skills in %s. I'd recommend asking this question directly during the interview process to get the most accurate information.",
		job.Title, job.Company, job.Location, job.Salary, strings.Join(firstN(job.Requirements, 2), " and "))
}

func generalFallback(question string) string {
	q := strings.ToLower(question)
	if containsAny(q, "help", "what", "how") {
		return "I'm here to help you with job-related questions! You can ask me about specific job requirements, salary information, work arrangements, company details, or general career advice. What would you like to know?"
	}
	if containsAny(q, "thanks", "thank") {
		return "You're very welcome! I'm happy to help with any job-related questions you might have. Feel free to ask about anything else!"
	}
	return "I'm your job search assistant! I can help you understand job requirements, discuss salary ranges, explain work arrangements, and provide career guidance. What specific information are you looking for?"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
