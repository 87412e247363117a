package update

const helpMarkdown = `# tareas

Tasks live in a JSON file next to the program and are rewritten after
every change. Snapshots go to the export directory.

## List

| key | action |
|-----|--------|
| j/k, arrows | move |
| a | add task |
| e | edit selected |
| d | delete selected (asks first) |
| x | toggle done |
| s | export menu |
| / | command palette |
| ? | toggle this help |
| q | quit |

## Form

Tab switches between title and description, ctrl+t flips the done flag,
ctrl+s saves, esc cancels. The title cannot be empty.

## Palette

` + "`add <title>`, `done <id>`, `delete <id>`, `export json|csv`" + `
`
