// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types for the
Interview Prep API.

# Request Types

Each write operation has its own input struct with required and optional
fields made explicit:

  - CreateCategoryRequest / UpdateCategoryRequest: name (required)
  - CreateCompanyRequest / UpdateCompanyRequest: name (required)
  - CreateRoleRequest / UpdateRoleRequest: title (required)
  - CreateQuestionRequest / UpdateQuestionRequest: question_text (required),
    optional category_id, company_id, role_id
  - CreateAnswerRequest / UpdateAnswerRequest: answer_text (required)
  - CreateSessionRequest / UpdateSessionRequest: name (required),
    optional company_id, role_id

Optional foreign keys are pointers; nil means untagged. Updates replace
all mutable fields, they are not partial patches.

# Domain Types

Read responses mirror entity rows plus joined display names:

  - Question includes category_name, company_name, and role_title
  - Session includes company_name and role_title

Joined names are pointers and serialize as null when the foreign key
is null.

# Envelopes

SuccessResponse is the body for update/delete acknowledgements.
ErrorResponse carries a single error message.
*/
package models
