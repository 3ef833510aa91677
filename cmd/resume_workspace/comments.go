package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/types"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Review comments left on resumes",
}

var commentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List comments, newest first",
	RunE:  runCommentsList,
}

var commentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Leave a comment on a student's resume",
	RunE:  runCommentsAdd,
}

var (
	commentsListStudent string
	commentStudent      string
	commentAuthor       string
	commentBody         string
	commentVersionID    string
	commentBulletID     string
)

func init() {
	commentsListCmd.Flags().StringVar(&commentsListStudent, "student", "", "Only show comments for this student id")

	commentsAddCmd.Flags().StringVar(&commentStudent, "student", "", "Target student id (required)")
	commentsAddCmd.Flags().StringVarP(&commentAuthor, "author", "a", "", "Comment author name (required)")
	commentsAddCmd.Flags().StringVarP(&commentBody, "body", "b", "", "Comment text (required)")
	commentsAddCmd.Flags().StringVar(&commentVersionID, "version", "", "Saved resume version the comment refers to")
	commentsAddCmd.Flags().StringVar(&commentBulletID, "bullet", "", "Anchor the comment to a single bullet id")

	for _, flag := range []string{"student", "author", "body"} {
		if err := commentsAddCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	commentsCmd.AddCommand(commentsListCmd)
	commentsCmd.AddCommand(commentsAddCmd)
	rootCmd.AddCommand(commentsCmd)
}

func runCommentsList(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	var records []types.CommentRecord
	if commentsListStudent != "" {
		records, err = ws.CommentsForStudent(cmd.Context(), commentsListStudent)
	} else {
		records, err = ws.Comments(cmd.Context())
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no comments")
		return nil
	}
	for _, record := range records {
		anchor := string(record.Anchor.Scope)
		if record.Anchor.Scope == types.CommentScopeBullet {
			anchor = "bullet " + record.Anchor.BulletID
		}
		fmt.Printf("%s  %s  [%s] for %s (%s)\n  %s\n",
			record.ID, record.CreatedAt, record.AuthorName, record.TargetStudentID, anchor, record.Body)
	}
	return nil
}

func runCommentsAdd(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	anchor := types.CommentAnchor{Scope: types.CommentScopeResume}
	if commentBulletID != "" {
		anchor = types.CommentAnchor{Scope: types.CommentScopeBullet, BulletID: commentBulletID}
	}

	record := types.CommentRecord{
		TargetStudentID: commentStudent,
		ResumeVersionID: commentVersionID,
		Anchor:          anchor,
		AuthorName:      commentAuthor,
		Body:            commentBody,
	}

	saved, err := ws.SaveComment(cmd.Context(), record)
	if err != nil {
		return err
	}
	fmt.Printf("Saved comment %s for %s\n", saved.ID, saved.TargetStudentID)
	return nil
}
