package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/pkg/assistant/access"
	"github.com/charley4805/project-pretzel/pkg/assistant/session"
)

// The three reference failure modes each get their own explanation. None of
// them is an error: a missing or stale project reference is a conversation
// problem, not an infrastructure one.
const (
	projectInfoNoId = "I can summarize the project, but no projectId was provided. " +
		"Try asking again from inside an active project."
	projectInfoBadId = "I tried to look up this project, but the projectId format seems invalid. " +
		"Please try again from an active project."
	projectInfoNotFound = "I looked for that project in the database, but couldn't find it. " +
		"It may have been deleted or you may not have access."
)

func (e *Engine) handleProjectInfo(ctx context.Context, sess *session.Session) (string, error) {
	if sess.ProjectId == "" {
		return projectInfoNoId, nil
	}

	projectId, err := uuid.Parse(sess.ProjectId)
	if err != nil {
		return projectInfoBadId, nil
	}

	project, err := e.projects.GetProject(ctx, projectId)
	if err != nil {
		return "", fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return projectInfoNotFound, nil
	}

	description := project.Description
	if description == "" {
		description = "No description provided."
	}

	if !access.MayViewFullTeam(sess.RoleKey) {
		var b strings.Builder
		b.WriteString("Project Overview:\n")
		fmt.Fprintf(&b, "Name: %s\n", project.Name)
		fmt.Fprintf(&b, "Description: %s\n", description)
		fmt.Fprintf(&b, "Status: %s\n", project.Status)
		b.WriteString("Team details are limited based on your role. ")
		b.WriteString("Ask your Project Manager if you need more information.")
		return b.String(), nil
	}

	members, err := e.projects.ListMembers(ctx, projectId)
	if err != nil {
		return "", fmt.Errorf("list members: %w", err)
	}

	memberBlock := "No members found."
	if len(members) > 0 {
		lines := make([]string, len(members))
		for i, m := range members {
			roleName := m.RoleName
			if roleName == "" {
				roleName = "No role assigned"
			}
			lines[i] = fmt.Sprintf("- %s (user id: %s)", roleName, m.UserId)
		}
		memberBlock = strings.Join(lines, "\n")
	}

	var b strings.Builder
	b.WriteString("Project Overview (PM view):\n")
	fmt.Fprintf(&b, "Name: %s\n", project.Name)
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Status: %s\n", project.Status)
	fmt.Fprintf(&b, "Members:\n%s", memberBlock)
	return b.String(), nil
}
