package assist

import (
	"fmt"
	"strings"
)

// TagCount is the number of keywords the tags prompt asks for.
const TagCount = 10

const (
	descriptionPrompt = "Could you draft a requirements document for the job position %s? " +
		"The job description should cover the role and its responsibilities, the key qualifications, " +
		"and details about the position."
	descriptionSkills  = " The required skills should include expertise in %s."
	descriptionClosing = " You may also list additional skills relevant to this job. Thank you!"

	tagsPrompt = "Generate an array of the top %d keywords related to the profession '%s'. " +
		"The keywords should cover different aspects of the profession, including skills, responsibilities, " +
		"tools and technologies commonly associated with it. Try to produce a diverse set of keywords that " +
		"accurately represents the breadth of this profession. Your output must be a JSON array of strings " +
		"only, and you must return only the array."
)

// DescriptionPrompt builds the instruction used to draft a job description.
// Role and skills are interpolated as-is; skills are only mentioned when set.
func DescriptionPrompt(role, skills string) string {
	var b strings.Builder
	fmt.Fprintf(&b, descriptionPrompt, role)
	if strings.TrimSpace(skills) != "" {
		fmt.Fprintf(&b, descriptionSkills, skills)
	}
	b.WriteString(descriptionClosing)
	return b.String()
}

// TagsPrompt builds the instruction used to suggest tags for a profession.
func TagsPrompt(topic string) string {
	return fmt.Sprintf(tagsPrompt, TagCount, topic)
}
