package service

import (
	"context"
	"errors"
	"fmt"
)

// FetchTasks implements Service.
func (c *Client) FetchTasks(ctx context.Context, userID string) ([]Task, error) {
	const op = "fetchTasks"

	if userID == "" {
		return []Task{}, nil
	}

	docs, err := c.store.Find(ctx, TodosCollection, fieldUserID, userID)
	if err != nil {
		return nil, c.fail(op, transport(op, fmt.Sprintf("Unable to fetch tasks: %v", err), err))
	}

	tasks := make([]Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, taskFromDocument(doc))
	}
	return tasks, nil
}

// FetchTask implements Service.
func (c *Client) FetchTask(ctx context.Context, id string) (Task, error) {
	const op = "fetchTask"

	doc, err := c.store.Get(ctx, TodosCollection, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return Task{}, c.fail(op, notFound(op, "Task not found"))
		}
		return Task{}, c.fail(op, transport(op, fmt.Sprintf("Unable to fetch task: %v", err), err))
	}
	return taskFromDocument(doc), nil
}

// AddTask implements Service.
// The title check and the insert are not atomic: two concurrent adds with the
// same title can both succeed.
func (c *Client) AddTask(ctx context.Context, t NewTask) error {
	const op = "addTask"

	existing, err := c.store.Find(ctx, TodosCollection, fieldTitle, t.Title)
	if err != nil {
		return c.fail(op, transport(op, fmt.Sprintf("Unable to add task: %v", err), err))
	}
	if len(existing) > 0 {
		return c.fail(op, conflict(op, "A task with the same title already exists."))
	}

	fields := Fields{
		fieldUserID: t.UserID,
		fieldTitle:  t.Title,
		fieldStatus: t.Status,
	}
	if t.Description != "" {
		fields[fieldDescription] = t.Description
	}
	if t.Priority != "" {
		fields[fieldPriority] = string(t.Priority)
	}
	if t.DueDate != "" {
		fields[fieldDueDate] = t.DueDate
	}

	if _, err := c.store.Insert(ctx, TodosCollection, fields); err != nil {
		return c.fail(op, transport(op, fmt.Sprintf("Unable to add task: %v", err), err))
	}
	return nil
}

// EditTask implements Service.
func (c *Client) EditTask(ctx context.Context, id string, patch TaskPatch) error {
	const op = "editTask"

	if err := c.store.Update(ctx, TodosCollection, id, patch.Fields()); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return c.fail(op, notFound(op, "Task not found"))
		}
		return c.fail(op, transport(op, fmt.Sprintf("Unable to edit task: %v", err), err))
	}
	return nil
}

// DeleteTask implements Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	const op = "deleteTask"

	if err := c.store.Delete(ctx, TodosCollection, id); err != nil {
		return c.fail(op, transport(op, fmt.Sprintf("Unable to delete task: %v", err), err))
	}
	return nil
}

// ToggleTaskStatus implements Service.
// Read and write are separate store calls; concurrent toggles from other
// clients can be lost (last write wins).
func (c *Client) ToggleTaskStatus(ctx context.Context, id string) error {
	const op = "toggleTaskStatus"

	doc, err := c.store.Get(ctx, TodosCollection, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return c.fail(op, notFound(op, "Task not found for status toggle"))
		}
		return c.fail(op, transport(op, fmt.Sprintf("Unable to toggle task status: %v", err), err))
	}

	status := !doc.Fields.Bool(fieldStatus)
	if err := c.store.Update(ctx, TodosCollection, id, Fields{fieldStatus: status}); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return c.fail(op, notFound(op, "Task not found for status toggle"))
		}
		return c.fail(op, transport(op, fmt.Sprintf("Unable to toggle task status: %v", err), err))
	}
	return nil
}
