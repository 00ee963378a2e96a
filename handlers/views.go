// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "github.com/danielhkuo/employee-polls/models"

// userView shapes a user for the wire. The password hash never leaves
// the server.
func userView(u models.User) models.UserView {
	answers := make(map[string]string, len(u.Answers))
	for questionID, choice := range u.Answers {
		answers[questionID] = choice.String()
	}

	return models.UserView{
		ID:        u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Answers:   answers,
		Questions: u.QuestionIDs,
	}
}

// questionView shapes a question for the wire, with per-option tallies
// and vote shares.
func questionView(q models.Question) models.QuestionView {
	return models.QuestionView{
		ID:        q.ID,
		Author:    q.AuthorID,
		Timestamp: q.CreatedAt.Unix(),
		OptionOne: optionView(q, models.OptionA),
		OptionTwo: optionView(q, models.OptionB),
	}
}

func optionView(q models.Question, k models.OptionKey) models.OptionView {
	o := q.Option(k)
	return models.OptionView{
		Text:  o.Text,
		Votes: o.Voters,
		Count: len(o.Voters),
		Share: q.VoteShare(k),
	}
}
