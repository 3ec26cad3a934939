package receipt

// BuildPrompt returns the fixed extraction instruction for receipt images.
// Deterministic: the same prompt is sent for every receipt.
func BuildPrompt() string {
	return `Analyze this receipt image and extract the following information in JSON format:
{
  "amount": number (total amount),
  "date": "YYYY-MM-DD" format,
  "merchant": string (store/company name),
  "category": string (one of: "fuel", "maintenance", "carwash", "parts", "insurance", "other"),
  "description": string (brief description),
  "items": array of items if visible
}

Important:
- Return only valid JSON
- If you can't find a field, use null
- For amount, use the total (not including change)
- Guess the most likely category based on merchant/items
- Be confident in your extraction`
}
