package agent

import "fmt"

const classifierPromptTemplate = `You are a TurinIQ customer identification agent. Based on the user's message, determine if they are an existing customer (mentions account, order, support issues, or refunds) or a new customer (general inquiries, product interest). Extract any provided customer info (name, email, phone, customer_id).

Business ID: %s
User Message: %s
Format: {"customer_type": "existing|new", "customer_info": {"customer_id": str|null, "name": str|null, "email": str|null, "phone": str|null}}`

const fieldExtractPromptTemplate = `Extract the %s from the user's message.
Message: %s
Return JSON: {"%s": str|null}`

const escalationPromptTemplate = `Check if the message requires escalation.
Context: %s
Message: %s
Return JSON: {"escalate": bool, "reason": str}
Note: Escalate immediately if the message mentions refunds with reason "Refund request escalation".`

const supportPromptTemplate = `You are a TurinIQ support agent. Respond to the customer's message.
Context: %s
Knowledge Base: %s...
Message: %s`

const salesPromptTemplate = `You are a TurinIQ sales agent. Respond to the potential customer's message to answer their queries and encourage engagement.
Context: %s
Knowledge Base: %s...
Message: %s
Return JSON: {"response": str, "reason": str}`

func classifierPrompt(businessID, message string) string {
	return fmt.Sprintf(classifierPromptTemplate, businessID, message)
}

func fieldExtractPrompt(field, message string) string {
	return fmt.Sprintf(fieldExtractPromptTemplate, field, message, field)
}

func escalationPrompt(contextPrompt, message string) string {
	return fmt.Sprintf(escalationPromptTemplate, contextPrompt, message)
}

func supportPrompt(contextPrompt, knowledgeBase, message string) string {
	return fmt.Sprintf(supportPromptTemplate, contextPrompt, knowledgeBase, message)
}

func salesPrompt(contextPrompt, knowledgeBase, message string) string {
	return fmt.Sprintf(salesPromptTemplate, contextPrompt, knowledgeBase, message)
}
