package curriculum

const sampleReadme = `# OSSU Computer Science

| Courses | Duration | Effort | Prerequisites |
| :-- | :--: | :--: | :--: |
| [Preamble Course](https://example.com/preamble) | 1 week | 1 hour/week | none |

## Core Programming

Topics covered: functional programming, design for testing, program requirements, and more

Courses | Duration | Effort | Prerequisites | Discussion
:-- | :--: | :--: | :--: | :--:

| Courses | Duration | Effort | Prerequisites | Discussion |
| :-- | :--: | :--: | :--: | :--: |
| [How to Code - Simple Data](https://www.edx.org/course/how-to-code-simple-data) | 7 weeks | 8-10 hours/week | none | [chat](https://discord.gg/a) |
| [Programming Languages, Part A](https://www.coursera.org/learn/programming-languages-part-a) | 5 weeks | 4-8 hours/week | [How to Code](#core-programming); Calculus | [chat](https://discord.gg/b) |

## Community

| Courses | Duration | Effort | Prerequisites |
| :-- | :--: | :--: | :--: |
| [Discord Tour](https://discord.gg/c) | 1 week | 1 hour/week | none |
`
